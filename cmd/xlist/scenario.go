package main

import (
	"bufio"
	"context"
	"io"
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/list"
	"github.com/benz9527/xlist/lib/listfmt"
	"github.com/benz9527/xlist/xlog"
)

type stepOp uint8

const (
	opPrint stepOp = iota
	opInsertAtStart
	opInsertAtEnd
	opInsertAtPosition
	opDeleteAtStart
	opDeleteAtEnd
	opDeleteAtPosition
	opSearch
)

type scenarioStep struct {
	op       stepOp
	value    int
	position int
}

func printList() scenarioStep                  { return scenarioStep{op: opPrint} }
func insertAtStart(v int) scenarioStep         { return scenarioStep{op: opInsertAtStart, value: v} }
func insertAtEnd(v int) scenarioStep           { return scenarioStep{op: opInsertAtEnd, value: v} }
func insertAtPosition(v, pos int) scenarioStep { return scenarioStep{op: opInsertAtPosition, value: v, position: pos} }
func deleteAtStart() scenarioStep              { return scenarioStep{op: opDeleteAtStart} }
func deleteAtEnd() scenarioStep                { return scenarioStep{op: opDeleteAtEnd} }
func deleteAtPosition(pos int) scenarioStep    { return scenarioStep{op: opDeleteAtPosition, position: pos} }
func search(key int) scenarioStep              { return scenarioStep{op: opSearch, value: key} }

type scenario struct {
	name    string
	newList func(opts ...list.ListOption) list.PositionalLinkedList[int]
	render  func(seq iter.Seq[int]) string
	steps   []scenarioStep
}

// run writes one line per failed operation, printed list and search result.
func (sc *scenario) run(w io.Writer, opts ...list.ListOption) (list.PositionalLinkedList[int], error) {
	l := sc.newList(append([]list.ListOption{list.WithListName(sc.name)}, opts...)...)
	bw := bufio.NewWriter(w)
	writeLine := func(line string) {
		_, _ = bw.WriteString(line)
		_ = bw.WriteByte('\n')
	}
	writeLine("== " + sc.name + " ==")
	for _, step := range sc.steps {
		var err error
		switch step.op {
		case opPrint:
			writeLine(sc.render(l.All()))
		case opInsertAtStart:
			err = l.InsertAtStart(step.value)
		case opInsertAtEnd:
			err = l.InsertAtEnd(step.value)
		case opInsertAtPosition:
			err = l.InsertAtPosition(step.value, step.position)
		case opDeleteAtStart:
			_, err = l.DeleteAtStart()
		case opDeleteAtEnd:
			_, err = l.DeleteAtEnd()
		case opDeleteAtPosition:
			_, err = l.DeleteAtPosition(step.position)
		case opSearch:
			position, serr := l.Search(step.value)
			writeLine(listfmt.SearchResult(step.value, position, serr))
		}
		if err != nil {
			writeLine(listfmt.Failure(err))
		}
	}
	if err := bw.Flush(); err != nil {
		return l, infra.WrapErrorStackWithMessage(err, "[xlist] write "+sc.name+" transcript")
	}
	return l, nil
}

var scenarios = []*scenario{
	{
		name: "singly",
		newList: func(opts ...list.ListOption) list.PositionalLinkedList[int] {
			return list.NewSinglyLinkedList[int](opts...)
		},
		render: listfmt.Singly[int],
		steps: []scenarioStep{
			deleteAtStart(), printList(),
			insertAtEnd(300), printList(),
			deleteAtEnd(), printList(),
			insertAtStart(30), insertAtStart(20), insertAtStart(10), insertAtStart(5), printList(),
			insertAtEnd(100), printList(),
			insertAtPosition(1, 0), printList(),
			insertAtPosition(8, 8), printList(),
			insertAtPosition(50, 5), printList(),
			deleteAtStart(), printList(),
			deleteAtStart(), printList(),
			deleteAtEnd(), printList(),
			deleteAtPosition(3), printList(),
			deleteAtPosition(5), printList(),
			deleteAtPosition(3), printList(),
			deleteAtPosition(10), printList(),
			search(10),
			search(100),
		},
	},
	{
		name: "doubly",
		newList: func(opts ...list.ListOption) list.PositionalLinkedList[int] {
			return list.NewDoublyLinkedList[int](opts...)
		},
		render: listfmt.Doubly[int],
		steps: []scenarioStep{
			deleteAtEnd(), printList(),
			insertAtEnd(300), printList(),
			deleteAtStart(), printList(),
			insertAtStart(10), printList(),
			deleteAtEnd(), printList(),
			insertAtStart(20), printList(),
			insertAtEnd(30), printList(),
			insertAtPosition(100, 1), printList(),
			insertAtPosition(600, 6), printList(),
			insertAtPosition(800, 8), printList(),
			insertAtPosition(500, 5), printList(),
			deleteAtStart(), printList(),
			deleteAtEnd(), printList(),
			insertAtStart(10), insertAtStart(20), insertAtStart(30), insertAtStart(40), insertAtStart(50), printList(),
			deleteAtPosition(1), printList(),
			deleteAtPosition(5), printList(),
			deleteAtPosition(2), printList(),
			search(20), printList(),
			search(200), printList(),
		},
	},
	{
		name: "circular",
		newList: func(opts ...list.ListOption) list.PositionalLinkedList[int] {
			return list.NewCircularLinkedList[int](opts...)
		},
		render: listfmt.Circular[int],
		steps: []scenarioStep{
			insertAtEnd(200), printList(),
			insertAtStart(100), printList(),
			insertAtEnd(20), printList(),
			insertAtPosition(1000, 1), printList(),
			insertAtPosition(3000, 3), printList(),
			insertAtPosition(6000, 6), printList(),
			insertAtPosition(8000, 8), printList(),
			deleteAtStart(), printList(),
			deleteAtEnd(), printList(),
			search(200),
			search(2000),
		},
	},
}

func lookupScenario(name string) (*scenario, bool) {
	for _, sc := range scenarios {
		if sc.name == strings.ToLower(strings.TrimSpace(name)) {
			return sc, true
		}
	}
	return nil, false
}

func runScenarios(ctx context.Context, w io.Writer, logger xlog.XLogger, names []string, opts ...list.ListOption) error {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return infra.WrapErrorStack(err)
		}
		sc, ok := lookupScenario(name)
		if !ok {
			return infra.NewErrorStack("[xlist] unknown scenario " + name)
		}
		l, err := sc.run(w, opts...)
		if err != nil {
			logger.ErrorStack(err, "scenario failed", zap.String("scenario", sc.name))
			return err
		}
		logger.Info("scenario finished", zap.String("scenario", sc.name), zap.Int("len", l.Len()))
	}
	return nil
}
