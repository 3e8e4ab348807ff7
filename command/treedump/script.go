// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// script verbs
const (
	verbInsert = "insert"
	verbDelete = "delete"
	verbSearch = "search"
)

// one parsed script operation
type scriptOp struct {
	verb string
	key  int64
}

// parseScript - read operations one per line
//
// blank lines and lines starting with "#" are skipped
// on error the returned line number is the offending one
func parseScript(r io.Reader) ([]scriptOp, int, error) {
	ops := []scriptOp{}
	lineNumber := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if 2 != len(fields) {
			return nil, lineNumber, fault.ErrInvalidScriptCommand
		}

		switch fields[0] {
		case verbInsert, verbDelete, verbSearch:
		default:
			return nil, lineNumber, fault.ErrInvalidScriptCommand
		}

		key, err := strconv.ParseInt(fields[1], 10, 64)
		if nil != err {
			return nil, lineNumber, fault.ErrInvalidKey
		}

		ops = append(ops, scriptOp{verb: fields[0], key: key})
	}
	if err := scanner.Err(); nil != err {
		return nil, lineNumber, err
	}

	return ops, 0, nil
}
