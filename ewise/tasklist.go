// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewise

import (
	"math"

	"github.com/grb-go/core/alloc"
)

// indexMin is the sentinel written into PA, PB and PC fields of a freshly
// grown TaskList slot, and into KLast of a freshly grown coarse slot.
const indexMin = math.MinInt64

// Task is one unit of work emitted by Slice. A coarse task (KLast >= KFirst)
// covers every output vector in [KFirst, KLast]. A fine task (KLast == -1)
// covers part of the single output vector KFirst, delimited by (PA, PB)
// here and (PA, PB) of the task immediately after it in the TaskList.
type Task struct {
	KFirst, KLast int64
	PA, PB, PC    int64
}

func sentinelTask() Task {
	return Task{KFirst: -1, KLast: indexMin, PA: indexMin, PB: indexMin, PC: indexMin}
}

// IsCoarse reports whether t is a coarse task.
func (t Task) IsCoarse() bool { return t.KLast != -1 }

// TaskList is the ordered list of tasks Slice produces. Tasks appear in
// increasing KFirst; fine tasks for the same vector are contiguous. After a
// fine-task run, Slice stashes the end-of-vector sentinel in the slot just
// beyond the last real task, growing the list for it when needed; a list
// whose last task is coarse may have no slot beyond it.
type TaskList struct {
	a     *alloc.Allocator
	tasks []Task
	n     int64 // number of valid (real) tasks; n <= len(tasks)
}

// Len returns the number of real tasks (ntasks in the spec).
func (tl *TaskList) Len() int64 { return tl.n }

// MaxTasks returns the capacity of the backing array (max_ntasks).
func (tl *TaskList) MaxTasks() int64 { return int64(len(tl.tasks)) }

// At returns the i'th task, 0 <= i < Len(), or the sentinel/end-of-vector
// slot at i == Len() if it has been written.
func (tl *TaskList) At(i int64) Task { return tl.tasks[i] }

func newTaskList(a *alloc.Allocator, initial int64) (*TaskList, error) {
	if initial < 1 {
		initial = 1
	}
	tasks, ok := alloc.AllocSlice[Task](a, int(initial))
	if !ok {
		return nil, ErrOutOfMemory
	}
	for i := range tasks {
		tasks[i] = sentinelTask()
	}
	return &TaskList{a: a, tasks: tasks}, nil
}

// free releases the backing array's accounting. Called on every error path
// and ignored on success, where ownership passes to the caller.
func (tl *TaskList) free() {
	if tl == nil {
		return
	}
	alloc.FreeSlice(tl.a, tl.tasks)
}

// ensure grows the backing array, if needed, to hold at least need slots,
// doubling geometrically and initializing newly grown slots with sentinels.
func (tl *TaskList) ensure(need int64) error {
	if need <= int64(len(tl.tasks)) {
		return nil
	}
	newCap := 2*need + 1
	grown, ok := alloc.ReallocSlice(tl.a, tl.tasks, int(newCap))
	if !ok {
		return ErrOutOfMemory
	}
	for i := len(tl.tasks); i < len(grown); i++ {
		grown[i] = sentinelTask()
	}
	tl.tasks = grown
	return nil
}

// appendCoarse emits a coarse task covering [kfirst, klast]. It sets only
// KFirst and KLast: PA and PB of the slot are left as they are, so an end
// sentinel stashed there by setNextFields survives.
func (tl *TaskList) appendCoarse(kfirst, klast int64) error {
	if err := tl.ensure(tl.n + 1); err != nil {
		return err
	}
	tl.tasks[tl.n].KFirst = kfirst
	tl.tasks[tl.n].KLast = klast
	tl.n++
	return nil
}

// appendFine emits a fine task over vector k starting at (pA, pB).
func (tl *TaskList) appendFine(k, pA, pB int64) error {
	if err := tl.ensure(tl.n + 1); err != nil {
		return err
	}
	tl.tasks[tl.n] = Task{KFirst: k, KLast: -1, PA: pA, PB: pB, PC: indexMin}
	tl.n++
	return nil
}

// setNextFields writes (pA, pB) into the slot immediately after the last
// real task without counting it as a task. This is the fine-task-run end
// sentinel: the run's last task computes its own end as TaskList.At(n).PA/PB.
// If the following emission is a coarse task, it leaves these fields in
// place and ignores them; if it is a fine task for the next vector, it
// overwrites them with its own (pA, pB).
func (tl *TaskList) setNextFields(pA, pB int64) error {
	if err := tl.ensure(tl.n + 1); err != nil {
		return err
	}
	tl.tasks[tl.n].PA = pA
	tl.tasks[tl.n].PB = pB
	return nil
}
