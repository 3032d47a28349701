// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"fmt"
	"testing"

	"github.com/absmach/smpp-client/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var (
	errKind   = errors.New("field value not allowed")
	errDetail = errors.New("invalid bindOperation: sender")
	errOther  = errors.New("configuration has no id")
)

func TestError(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		msg  string
	}{
		{
			desc: "plain error",
			err:  errKind,
			msg:  "field value not allowed",
		},
		{
			desc: "wrapped error",
			err:  errors.Wrap(errKind, errDetail),
			msg:  "field value not allowed : invalid bindOperation: sender",
		},
		{
			desc: "double wrapped error",
			err:  errors.Wrap(errOther, errors.Wrap(errKind, errDetail)),
			msg:  "configuration has no id : field value not allowed : invalid bindOperation: sender",
		},
	}

	for _, tc := range cases {
		errMsg := tc.err.Error()
		assert.Equal(t, tc.msg, errMsg, fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.msg, errMsg))
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		desc      string
		container error
		contained error
		contains  bool
	}{
		{
			desc:      "nil contains nil",
			container: nil,
			contained: nil,
			contains:  true,
		},
		{
			desc:      "nil contains non-nil",
			container: nil,
			contained: errKind,
			contains:  false,
		},
		{
			desc:      "non-nil contains nil",
			container: errKind,
			contained: nil,
			contains:  false,
		},
		{
			desc:      "unrelated errors",
			container: errKind,
			contained: errOther,
			contains:  false,
		},
		{
			desc:      "wrap contains the wrapper",
			container: errors.Wrap(errKind, errDetail),
			contained: errKind,
			contains:  true,
		},
		{
			desc:      "wrap contains the wrapped",
			container: errors.Wrap(errKind, errDetail),
			contained: errDetail,
			contains:  true,
		},
		{
			desc:      "double wrap contains the middle layer",
			container: errors.Wrap(errOther, errors.Wrap(errKind, errDetail)),
			contained: errKind,
			contains:  true,
		},
	}
	for _, tc := range cases {
		contains := errors.Contains(tc.container, tc.contained)
		assert.Equal(t, tc.contains, contains, fmt.Sprintf("%s: expected %v to contain %v\n", tc.desc, tc.container, tc.contained))
	}
}

func TestUnwrap(t *testing.T) {
	wrapper, err := errors.Unwrap(errors.Wrap(errKind, errDetail))
	assert.Equal(t, errKind.Error(), wrapper.Error(), fmt.Sprintf("expected wrapper %v got %v\n", errKind, wrapper))
	assert.Equal(t, errDetail.Error(), err.Error(), fmt.Sprintf("expected wrapped %v got %v\n", errDetail, err))

	wrapper, err = errors.Unwrap(errKind)
	assert.Nil(t, wrapper, fmt.Sprintf("expected nil wrapper got %v\n", wrapper))
	assert.Equal(t, errKind.Error(), err.Error(), fmt.Sprintf("expected %v got %v\n", errKind, err))
}
