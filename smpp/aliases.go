// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package smpp

import (
	"github.com/absmach/smpp-client/pkg/errors"
)

// ErrUnknownKey indicates an external configuration key with no
// registered translation.
var ErrUnknownKey = errors.New("configuration key not recognized")

// aliasTable maps short operator-facing configuration keys, as used by
// management CLIs and APIs, to canonical field names accepted by Build.
// The table is fixed for the lifetime of the process; new keys register
// a translation here instead of reusing an existing slot.
var aliasTable = map[string]string{
	"cid":               "id",
	"host":              "host",
	"port":              "port",
	"username":          "username",
	"password":          "password",
	"systype":           "systemType",
	"logfile":           "log_file",
	"loglevel":          "log_level",
	"bind_to":           "sessionInitTimerSecs",
	"elink_interval":    "enquireLinkTimerSecs",
	"trx_to":            "inactivityTimerSecs",
	"res_to":            "responseTimerSecs",
	"con_loss_retry":    "reconnectOnConnectionLoss",
	"con_fail_retry":    "reconnectOnConnectionFailure",
	"con_loss_delay":    "reconnectOnConnectionLossDelay",
	"con_fail_delay":    "reconnectOnConnectionFailureDelay",
	"pdu_red_to":        "pduReadTimerSecs",
	"ssl":               "useSSL",
	"bind":              "bindOperation",
	"bind_ton":          "bind_addr_ton",
	"bind_npi":          "bind_addr_npi",
	"src_ton":           "source_addr_ton",
	"src_npi":           "source_addr_npi",
	"dst_ton":           "dest_addr_ton",
	"dst_npi":           "dest_addr_npi",
	"addr_range":        "address_range",
	"src_addr":          "source_addr",
	"esm_class":         "esm_class",
	"proto_id":          "protocol_id",
	"priority":          "priority_flag",
	"validity":          "validity_period",
	"dlr":               "registered_delivery",
	"ripf":              "replace_if_present_flag",
	"def_msg_id":        "sm_default_msg_id",
	"coding":            "data_coding",
	"requeue_delay":     "requeue_delay",
	"submit_throughput": "submit_sm_throughput",
	"dlr_expiry":        "dlr_expiry",
}

// Translate rewrites an external configuration key to its canonical field
// name. Values are not inspected.
func Translate(key string) (string, error) {
	internal, ok := aliasTable[key]
	if !ok {
		return "", errors.Wrap(ErrUnknownKey, errors.New(key))
	}
	return internal, nil
}

// TranslateAll rewrites every key of a raw field bag. It fails on the
// first unrecognized key and leaves the input untouched.
func TranslateAll(raw map[string]any) (map[string]any, error) {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		internal, err := Translate(k)
		if err != nil {
			return nil, err
		}
		fields[internal] = v
	}
	return fields, nil
}
