// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package smpp builds validated SMPP client session configurations from
// loosely typed key/value input. The session engine consumes the built
// record as-is and never re-checks it.
package smpp

import (
	"github.com/absmach/smpp-client/logger"
	"github.com/fiorix/go-smpp/smpp/pdu/pdufield"
)

// Config is a validated SMPP client session configuration. It is built
// once by Build and never mutated afterwards; changing a session's
// parameters means building a new record.
type Config struct {
	// ID identifies the client connector. It doubles as the stem of the
	// default log file path.
	ID string

	// Connection.
	Host       string
	Port       int
	Username   string
	Password   string
	SystemType string

	// Session logging.
	LogFile       string
	LogLevel      logger.Level
	LogFormat     string
	LogDateFormat string

	// Timers, in seconds. Enforced by the session engine, not here.
	SessionInitTimer float64
	EnquireLinkTimer float64
	InactivityTimer  float64
	ResponseTimer    float64
	PDUReadTimer     float64

	// Reconnection policy.
	ReconnectOnConnectionLoss         bool
	ReconnectOnConnectionFailure      bool
	ReconnectOnConnectionLossDelay    float64
	ReconnectOnConnectionFailureDelay float64

	// Transport security.
	UseTLS             bool
	TLSCertificateFile string

	// Bind behavior.
	BindOperation BindOperation
	ServiceType   string
	BindTON       TypeOfNumber
	BindNPI       NumberingPlan
	SourceTON     TypeOfNumber
	SourceNPI     NumberingPlan
	DestTON       TypeOfNumber
	DestNPI       NumberingPlan
	AddrRange     string
	SourceAddr    string

	// Message submission defaults.
	ESMClass             ESMClass
	ProtocolID           *uint8
	Priority             PriorityFlag
	ScheduleDeliveryTime string
	ValidityPeriod       string
	RegisteredDelivery   pdufield.DeliverySetting
	ReplaceIfPresent     ReplaceIfPresentFlag
	DefaultMsgID         int
	DataCoding           int

	// Quality of service.
	RequeueDelay     float64
	SubmitThroughput float64
	DLRExpiry        float64
}

// AddressTON mirrors BindTON under the legacy smpp.twisted field name.
func (c Config) AddressTON() TypeOfNumber {
	return c.BindTON
}

// AddressNPI mirrors BindNPI under the legacy smpp.twisted field name.
func (c Config) AddressNPI() NumberingPlan {
	return c.BindNPI
}

// AddressRange mirrors AddrRange under the legacy smpp.twisted field name.
func (c Config) AddressRange() string {
	return c.AddrRange
}
