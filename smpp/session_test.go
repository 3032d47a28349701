// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package smpp_test

import (
	"fmt"
	"testing"

	"github.com/absmach/smpp-client/pkg/errors"
	"github.com/absmach/smpp-client/smpp"
	gosmpp "github.com/fiorix/go-smpp/smpp"
	"github.com/fiorix/go-smpp/smpp/pdu"
	"github.com/fiorix/go-smpp/smpp/pdu/pdufield"
	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionBindOperations(t *testing.T) {
	handler := func(p pdu.Body) {}

	cases := []struct {
		desc string
		bind smpp.BindOperation
	}{
		{"transmitter session", smpp.BindTransmitter},
		{"receiver session", smpp.BindReceiver},
		{"transceiver session", smpp.BindTransceiver},
	}

	for _, tc := range cases {
		cfg, err := smpp.Build(map[string]any{"id": "gw1", "bindOperation": string(tc.bind)})
		require.Nil(t, err, fmt.Sprintf("%s: unexpected error %v", tc.desc, err))

		conn, err := smpp.NewSession(cfg, handler)
		require.Nil(t, err, fmt.Sprintf("%s: unexpected error %v", tc.desc, err))

		switch tc.bind {
		case smpp.BindTransmitter:
			tx, ok := conn.(*gosmpp.Transmitter)
			require.True(t, ok, fmt.Sprintf("%s: expected transmitter got %T", tc.desc, conn))
			assert.Equal(t, "127.0.0.1:2775", tx.Addr)
			assert.Equal(t, "smppclient", tx.User)
		case smpp.BindReceiver:
			_, ok := conn.(*gosmpp.Receiver)
			require.True(t, ok, fmt.Sprintf("%s: expected receiver got %T", tc.desc, conn))
		case smpp.BindTransceiver:
			trx, ok := conn.(*gosmpp.Transceiver)
			require.True(t, ok, fmt.Sprintf("%s: expected transceiver got %T", tc.desc, conn))
			assert.NotNil(t, trx.Handler)
		}
	}
}

func TestNewSessionTLS(t *testing.T) {
	cfg, err := smpp.Build(map[string]any{"id": "gw1", "useSSL": true})
	require.Nil(t, err, fmt.Sprintf("unexpected error: %v", err))

	conn, err := smpp.NewSession(cfg, nil)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %v", err))
	trx, ok := conn.(*gosmpp.Transceiver)
	require.True(t, ok, fmt.Sprintf("expected transceiver got %T", conn))
	assert.NotNil(t, trx.TLS)

	cfg, err = smpp.Build(map[string]any{
		"id":                 "gw1",
		"useSSL":             true,
		"SSLCertificateFile": "/nonexistent/ca.pem",
	})
	require.Nil(t, err, fmt.Sprintf("unexpected error: %v", err))

	_, err = smpp.NewSession(cfg, nil)
	assert.True(t, errors.Contains(err, smpp.ErrLoadCert), fmt.Sprintf("expected %v got %v", smpp.ErrLoadCert, err))
}

func TestShortMessageDefaults(t *testing.T) {
	cfg, err := smpp.Build(map[string]any{
		"id":                  "gw1",
		"source_addr":         "3360000",
		"service_type":        "CMT",
		"registered_delivery": pdufield.FinalDeliveryReceipt,
		"data_coding":         8,
	})
	require.Nil(t, err, fmt.Sprintf("unexpected error: %v", err))

	sm := smpp.ShortMessage(cfg, "", "3361111", "hello")
	assert.Equal(t, "3360000", sm.Src)
	assert.Equal(t, "3361111", sm.Dst)
	assert.Equal(t, "CMT", sm.ServiceType)
	assert.Equal(t, pdufield.FinalDeliveryReceipt, sm.Register)
	assert.Equal(t, uint8(smpp.TONNational), sm.SourceAddrTON)
	assert.Equal(t, uint8(smpp.NPIISDN), sm.SourceAddrNPI)
	assert.Equal(t, uint8(smpp.TONInternational), sm.DestAddrTON)
	assert.Equal(t, uint8(smpp.ESMStoreAndForwardDefault), sm.ESMClass)
	assert.Equal(t, pdutext.UCS2("hello"), sm.Text)

	sm = smpp.ShortMessage(cfg, "explicit", "3361111", "hello")
	assert.Equal(t, "explicit", sm.Src)
}
