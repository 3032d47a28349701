// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package smpp

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/absmach/smpp-client/pkg/errors"
	"github.com/fiorix/go-smpp/smpp"
	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
	"golang.org/x/time/rate"
)

// ErrLoadCert indicates a TLS certificate file that could not be read or
// parsed.
var ErrLoadCert = errors.New("failed to load TLS certificate file")

// NewSession turns a built configuration into a persistent SMPP client
// connection of the configured bind operation. The handler receives
// inbound PDUs on receiver and transceiver binds and is ignored for
// transmitter binds. The connection is not bound yet; callers run Bind
// and watch the returned status channel.
func NewSession(cfg Config, handler smpp.HandlerFunc) (smpp.ClientConn, error) {
	tlsCfg, err := tlsConfig(cfg)
	if err != nil {
		return nil, err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	var limiter smpp.RateLimiter
	if cfg.SubmitThroughput > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.SubmitThroughput), 1)
	}

	// The underlying client rebinds on its own; the configured failure
	// delay becomes its retry interval.
	var bindInterval time.Duration
	if cfg.ReconnectOnConnectionFailure {
		bindInterval = secs(cfg.ReconnectOnConnectionFailureDelay)
	}

	switch cfg.BindOperation {
	case BindTransmitter:
		return &smpp.Transmitter{
			Addr:               addr,
			User:               cfg.Username,
			Passwd:             cfg.Password,
			SystemType:         cfg.SystemType,
			EnquireLink:        secs(cfg.EnquireLinkTimer),
			EnquireLinkTimeout: secs(cfg.InactivityTimer),
			RespTimeout:        secs(cfg.ResponseTimer),
			BindInterval:       bindInterval,
			TLS:                tlsCfg,
			RateLimiter:        limiter,
		}, nil
	case BindReceiver:
		return &smpp.Receiver{
			Addr:        addr,
			User:        cfg.Username,
			Passwd:      cfg.Password,
			SystemType:  cfg.SystemType,
			EnquireLink: secs(cfg.EnquireLinkTimer),
			TLS:         tlsCfg,
			Handler:     handler,
		}, nil
	case BindTransceiver:
		return &smpp.Transceiver{
			Addr:               addr,
			User:               cfg.Username,
			Passwd:             cfg.Password,
			SystemType:         cfg.SystemType,
			EnquireLink:        secs(cfg.EnquireLinkTimer),
			EnquireLinkTimeout: secs(cfg.InactivityTimer),
			RespTimeout:        secs(cfg.ResponseTimer),
			BindInterval:       bindInterval,
			TLS:                tlsCfg,
			Handler:            handler,
			RateLimiter:        limiter,
		}, nil
	}
	return nil, errors.Wrap(ErrInvalidValue, errors.New("invalid bindOperation: "+string(cfg.BindOperation)))
}

// ShortMessage pre-fills a submission with the configured message
// defaults. Src falls back to the configured source address when empty.
func ShortMessage(cfg Config, src, dst, msg string) *smpp.ShortMessage {
	if src == "" {
		src = cfg.SourceAddr
	}
	sm := &smpp.ShortMessage{
		Src:                  src,
		Dst:                  dst,
		Text:                 codec(cfg.DataCoding, msg),
		Register:             cfg.RegisteredDelivery,
		ServiceType:          cfg.ServiceType,
		SourceAddrTON:        uint8(cfg.SourceTON),
		SourceAddrNPI:        uint8(cfg.SourceNPI),
		DestAddrTON:          uint8(cfg.DestTON),
		DestAddrNPI:          uint8(cfg.DestNPI),
		ESMClass:             uint8(cfg.ESMClass),
		PriorityFlag:         uint8(cfg.Priority),
		ScheduleDeliveryTime: cfg.ScheduleDeliveryTime,
		ReplaceIfPresentFlag: uint8(cfg.ReplaceIfPresent),
		SMDefaultMsgID:       uint8(cfg.DefaultMsgID),
	}
	if cfg.ProtocolID != nil {
		sm.ProtocolID = *cfg.ProtocolID
	}
	return sm
}

func codec(dataCoding int, msg string) pdutext.Codec {
	switch dataCoding {
	case 3:
		return pdutext.Latin1(msg)
	case 6:
		return pdutext.ISO88595(msg)
	case 8:
		return pdutext.UCS2(msg)
	default:
		return pdutext.Raw(msg)
	}
}

func tlsConfig(cfg Config) (*tls.Config, error) {
	if !cfg.UseTLS {
		return nil, nil
	}
	tc := &tls.Config{}
	if cfg.TLSCertificateFile != "" {
		pem, err := os.ReadFile(cfg.TLSCertificateFile)
		if err != nil {
			return nil, errors.Wrap(ErrLoadCert, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.Wrap(ErrLoadCert, errors.New("no certificates in "+cfg.TLSCertificateFile))
		}
		tc.RootCAs = pool
	}
	return tc, nil
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
