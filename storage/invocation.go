// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/multiindex/fault"
)

// Invoke - run one contract invocation as receiver
//
// all writes of the invocation are committed together when fn returns
// nil, an error or an abort discards all of them
func (d *Database) Invoke(receiver uint64, fn func(Host) error) error {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	if d.readOnly {
		return fault.ErrDatabaseIsReadOnly
	}

	access, err := newTransactionAccess(d.db, d.tables)
	if nil != err {
		return err
	}

	d.log.Infof("invoke: receiver: %x", receiver)
	return d.run(access, receiver, fn)
}

// View - run a read-only invocation on a snapshot of the database
func (d *Database) View(fn func(Host) error) error {
	return d.ViewAs(0, fn)
}

// ViewAs - run a read-only invocation with receiver as the code of
// its tables
func (d *Database) ViewAs(receiver uint64, fn func(Host) error) error {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}

	access, err := newSnapshotAccess(d.db)
	if nil != err {
		return err
	}

	return d.run(access, receiver, fn)
}

func (d *Database) run(access Access, receiver uint64, fn func(Host) error) (err error) {
	s := newSession(access, receiver, d.log)

	committed := false
	defer func() {
		s.over = true
		if committed {
			return
		}
		access.Abort()

		r := recover()
		if nil == r {
			d.log.Warnf("discard: receiver: %x  error: %s", receiver, err)
			return
		}
		if e, ok := fault.Recovered(r); ok {
			d.log.Warnf("abort: receiver: %x  error: %s", receiver, e)
			err = e
			return
		}
		panic(r)
	}()

	err = fn(s)
	if nil != err {
		return err
	}

	err = access.Commit()
	if nil != err {
		return err
	}
	committed = true

	if !access.ReadOnly() {
		d.log.Infof("commit: receiver: %x", receiver)
	}
	return nil
}
