// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package smpp

// Protocol value types used by bind and submit parameters. Values follow
// SMPP v3.4; they are carried opaquely by the configuration and consumed
// by the session layer.

// TypeOfNumber classifies an address (TON, SMPP v3.4 5.2.5).
type TypeOfNumber uint8

// Supported TON values.
const (
	TONUnknown          TypeOfNumber = 0x00
	TONInternational    TypeOfNumber = 0x01
	TONNational         TypeOfNumber = 0x02
	TONNetworkSpecific  TypeOfNumber = 0x03
	TONSubscriberNumber TypeOfNumber = 0x04
	TONAlphanumeric     TypeOfNumber = 0x05
	TONAbbreviated      TypeOfNumber = 0x06
)

// NumberingPlan identifies an address numbering plan (NPI, SMPP v3.4 5.2.6).
type NumberingPlan uint8

// Supported NPI values.
const (
	NPIUnknown    NumberingPlan = 0x00
	NPIISDN       NumberingPlan = 0x01
	NPIData       NumberingPlan = 0x03
	NPITelex      NumberingPlan = 0x04
	NPILandMobile NumberingPlan = 0x06
	NPINational   NumberingPlan = 0x08
	NPIPrivate    NumberingPlan = 0x09
	NPIERMES      NumberingPlan = 0x0a
	NPIInternet   NumberingPlan = 0x0e
	NPIWAPClient  NumberingPlan = 0x12
)

// ESMClass combines a messaging mode (low two bits) with a message type.
type ESMClass uint8

// Messaging modes and the default message type.
const (
	ESMModeDefault         ESMClass = 0x00
	ESMModeDatagram        ESMClass = 0x01
	ESMModeForward         ESMClass = 0x02
	ESMModeStoreAndForward ESMClass = 0x03
	ESMTypeDefault         ESMClass = 0x00
)

// ESMStoreAndForwardDefault is store-and-forward mode with the default
// message type.
const ESMStoreAndForwardDefault = ESMModeStoreAndForward | ESMTypeDefault

// PriorityFlag sets the priority level of a submitted message.
type PriorityFlag uint8

// Priority levels, lowest first.
const (
	PriorityLevel0 PriorityFlag = iota
	PriorityLevel1
	PriorityLevel2
	PriorityLevel3
)

// ReplaceIfPresentFlag requests replacement of a previously submitted
// message that is still pending delivery.
type ReplaceIfPresentFlag uint8

// Replace-if-present settings.
const (
	DoNotReplace ReplaceIfPresentFlag = 0x00
	Replace      ReplaceIfPresentFlag = 0x01
)

// BindOperation is the role a client session takes when establishing a
// connection.
type BindOperation string

// Supported bind operations.
const (
	BindTransceiver BindOperation = "transceiver"
	BindTransmitter BindOperation = "transmitter"
	BindReceiver    BindOperation = "receiver"
)
