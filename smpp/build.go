// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package smpp

import (
	"fmt"
	"regexp"

	"github.com/absmach/smpp-client/logger"
	"github.com/absmach/smpp-client/pkg/errors"
	"github.com/fiorix/go-smpp/smpp/pdu/pdufield"
)

var (
	// ErrMissingID indicates that the raw input carries no client id.
	ErrMissingID = errors.New("client configuration must have an id")

	// ErrInvalidIDSyntax indicates a client id that fails the length or
	// character pattern.
	ErrInvalidIDSyntax = errors.New("client id syntax is invalid")

	// ErrTypeMismatch indicates a field whose runtime type does not match
	// its declared one.
	ErrTypeMismatch = errors.New("configuration field type mismatch")

	// ErrInvalidValue indicates a well-typed field outside its allowed
	// value set.
	ErrInvalidValue = errors.New("configuration field value not allowed")
)

const defLogFilePattern = "/var/log/smpp-client/default-%s.log"

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,25}$`)

// dataCodings is the closed set of accepted data_coding values
// (SMPP v3.4 5.2.19). 0 asserts the SMSC default alphabet.
var dataCodings = map[int]bool{
	0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
	7: true, 8: true, 9: true, 10: true, 13: true, 14: true,
}

// field is one schema entry: the canonical name, the default substituted
// when the raw input has no such key, and the checked assignment into the
// record. Adding a configuration field means adding an entry here.
type field struct {
	name string
	def  any
	set  func(c *Config, name string, v any) error
}

// schema drives Build. Order is irrelevant except that it is fixed, so
// two identical inputs always fail on the same field first.
var schema = []field{
	{"host", "127.0.0.1", text(func(c *Config, s string) { c.Host = s })},
	{"port", 2775, integer(func(c *Config, i int) { c.Port = i })},
	{"username", "smppclient", text(func(c *Config, s string) { c.Username = s })},
	{"password", "password", text(func(c *Config, s string) { c.Password = s })},
	{"systemType", "", text(func(c *Config, s string) { c.SystemType = s })},

	{"log_file", "", text(func(c *Config, s string) { c.LogFile = s })},
	{"log_level", logger.Info, setLogLevel},
	{"log_format", "json", text(func(c *Config, s string) { c.LogFormat = s })},
	{"log_dateformat", "2006-01-02 15:04:05", text(func(c *Config, s string) { c.LogDateFormat = s })},

	{"sessionInitTimerSecs", 30, number(func(c *Config, f float64) { c.SessionInitTimer = f })},
	{"enquireLinkTimerSecs", 10, number(func(c *Config, f float64) { c.EnquireLinkTimer = f })},
	{"inactivityTimerSecs", 300, number(func(c *Config, f float64) { c.InactivityTimer = f })},
	{"responseTimerSecs", 60, number(func(c *Config, f float64) { c.ResponseTimer = f })},
	{"pduReadTimerSecs", 10, number(func(c *Config, f float64) { c.PDUReadTimer = f })},

	{"reconnectOnConnectionLoss", true, boolean(func(c *Config, b bool) { c.ReconnectOnConnectionLoss = b })},
	{"reconnectOnConnectionFailure", true, boolean(func(c *Config, b bool) { c.ReconnectOnConnectionFailure = b })},
	{"reconnectOnConnectionLossDelay", 10, number(func(c *Config, f float64) { c.ReconnectOnConnectionLossDelay = f })},
	{"reconnectOnConnectionFailureDelay", 10, number(func(c *Config, f float64) { c.ReconnectOnConnectionFailureDelay = f })},

	{"useSSL", false, boolean(func(c *Config, b bool) { c.UseTLS = b })},
	{"SSLCertificateFile", nil, optText(func(c *Config, s string) { c.TLSCertificateFile = s })},

	{"bindOperation", "transceiver", setBindOperation},
	{"service_type", nil, optText(func(c *Config, s string) { c.ServiceType = s })},
	{"bind_addr_ton", TONUnknown, protoValue(func(c *Config, u uint8) { c.BindTON = TypeOfNumber(u) })},
	{"bind_addr_npi", NPIISDN, protoValue(func(c *Config, u uint8) { c.BindNPI = NumberingPlan(u) })},
	{"source_addr_ton", TONNational, protoValue(func(c *Config, u uint8) { c.SourceTON = TypeOfNumber(u) })},
	{"source_addr_npi", NPIISDN, protoValue(func(c *Config, u uint8) { c.SourceNPI = NumberingPlan(u) })},
	{"dest_addr_ton", TONInternational, protoValue(func(c *Config, u uint8) { c.DestTON = TypeOfNumber(u) })},
	{"dest_addr_npi", NPIISDN, protoValue(func(c *Config, u uint8) { c.DestNPI = NumberingPlan(u) })},
	{"address_range", nil, optText(func(c *Config, s string) { c.AddrRange = s })},
	{"source_addr", nil, optText(func(c *Config, s string) { c.SourceAddr = s })},

	{"esm_class", ESMStoreAndForwardDefault, protoValue(func(c *Config, u uint8) { c.ESMClass = ESMClass(u) })},
	{"protocol_id", nil, setProtocolID},
	{"priority_flag", PriorityLevel0, protoValue(func(c *Config, u uint8) { c.Priority = PriorityFlag(u) })},
	{"schedule_delivery_time", nil, optText(func(c *Config, s string) { c.ScheduleDeliveryTime = s })},
	{"validity_period", nil, optText(func(c *Config, s string) { c.ValidityPeriod = s })},
	{"registered_delivery", pdufield.NoDeliveryReceipt, protoValue(func(c *Config, u uint8) { c.RegisteredDelivery = pdufield.DeliverySetting(u) })},
	{"replace_if_present_flag", DoNotReplace, protoValue(func(c *Config, u uint8) { c.ReplaceIfPresent = ReplaceIfPresentFlag(u) })},
	{"sm_default_msg_id", 0, integer(func(c *Config, i int) { c.DefaultMsgID = i })},
	{"data_coding", 0, setDataCoding},

	{"requeue_delay", 120, number(func(c *Config, f float64) { c.RequeueDelay = f })},
	{"submit_sm_throughput", 1, number(func(c *Config, f float64) { c.SubmitThroughput = f })},
	{"dlr_expiry", 86400, number(func(c *Config, f float64) { c.DLRExpiry = f })},
}

// Build validates the raw fields against the schema and assembles the
// configuration record. The id is checked first; no other field is
// examined when it is absent or malformed. On any failure no record is
// returned at all. Keys not present in the schema are ignored.
func Build(raw map[string]any) (Config, error) {
	v, ok := raw["id"]
	if !ok || v == nil {
		return Config{}, ErrMissingID
	}
	id := fmt.Sprint(v)
	if !idPattern.MatchString(id) {
		return Config{}, errors.Wrap(ErrInvalidIDSyntax, errors.New("id "+id))
	}

	cfg := Config{ID: id}
	for _, f := range schema {
		v, ok := raw[f.name]
		if !ok {
			v = f.def
		}
		if err := f.set(&cfg, f.name, v); err != nil {
			return Config{}, err
		}
	}

	if cfg.LogFile == "" {
		cfg.LogFile = fmt.Sprintf(defLogFilePattern, id)
	}

	return cfg, nil
}

func typeErr(name, want string) error {
	return errors.Wrap(ErrTypeMismatch, errors.New(name+" must be "+want))
}

func text(assign func(*Config, string)) func(*Config, string, any) error {
	return func(c *Config, name string, v any) error {
		s, ok := v.(string)
		if !ok {
			return typeErr(name, "a string")
		}
		assign(c, s)
		return nil
	}
}

// optText accepts nil as the explicit unset marker.
func optText(assign func(*Config, string)) func(*Config, string, any) error {
	return func(c *Config, name string, v any) error {
		if v == nil {
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return typeErr(name, "a string")
		}
		assign(c, s)
		return nil
	}
}

func number(assign func(*Config, float64)) func(*Config, string, any) error {
	return func(c *Config, name string, v any) error {
		f, ok := asFloat(v)
		if !ok {
			return typeErr(name, "an integer or float")
		}
		assign(c, f)
		return nil
	}
}

func integer(assign func(*Config, int)) func(*Config, string, any) error {
	return func(c *Config, name string, v any) error {
		i, ok := asInt(v)
		if !ok {
			return typeErr(name, "an integer")
		}
		assign(c, i)
		return nil
	}
}

func boolean(assign func(*Config, bool)) func(*Config, string, any) error {
	return func(c *Config, name string, v any) error {
		b, ok := v.(bool)
		if !ok {
			return typeErr(name, "a boolean")
		}
		assign(c, b)
		return nil
	}
}

// protoValue assigns an opaque protocol value carried as any uint8-sized
// enumeration or plain integer.
func protoValue(assign func(*Config, uint8)) func(*Config, string, any) error {
	return func(c *Config, name string, v any) error {
		u, ok := asUint8(v)
		if !ok {
			return typeErr(name, "a protocol value")
		}
		assign(c, u)
		return nil
	}
}

func setLogLevel(c *Config, name string, v any) error {
	switch lvl := v.(type) {
	case logger.Level:
		c.LogLevel = lvl
	case int:
		c.LogLevel = logger.Level(lvl)
	case string:
		var parsed logger.Level
		if err := parsed.UnmarshalText(lvl); err != nil {
			return errors.Wrap(ErrInvalidValue, errors.New("invalid "+name+": "+lvl))
		}
		c.LogLevel = parsed
	default:
		return typeErr(name, "a severity level")
	}
	return nil
}

func setBindOperation(c *Config, name string, v any) error {
	var op BindOperation
	switch b := v.(type) {
	case BindOperation:
		op = b
	case string:
		op = BindOperation(b)
	default:
		return typeErr(name, "a string")
	}
	switch op {
	case BindTransceiver, BindTransmitter, BindReceiver:
		c.BindOperation = op
		return nil
	}
	return errors.Wrap(ErrInvalidValue, errors.New("invalid "+name+": "+string(op)))
}

func setProtocolID(c *Config, name string, v any) error {
	if v == nil {
		return nil
	}
	u, ok := asUint8(v)
	if !ok {
		return typeErr(name, "a protocol value")
	}
	c.ProtocolID = &u
	return nil
}

func setDataCoding(c *Config, name string, v any) error {
	i, ok := asInt(v)
	if !ok {
		return typeErr(name, "an integer")
	}
	if !dataCodings[i] {
		return errors.Wrap(ErrInvalidValue, errors.New(fmt.Sprintf("invalid %s: %d", name, i)))
	}
	c.DataCoding = i
	return nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	}
	return 0, false
}

func asUint8(v any) (uint8, bool) {
	switch u := v.(type) {
	case uint8:
		return u, true
	case TypeOfNumber:
		return uint8(u), true
	case NumberingPlan:
		return uint8(u), true
	case ESMClass:
		return uint8(u), true
	case PriorityFlag:
		return uint8(u), true
	case ReplaceIfPresentFlag:
		return uint8(u), true
	case pdufield.DeliverySetting:
		return uint8(u), true
	}
	if i, ok := asInt(v); ok && i >= 0 && i <= 0xff {
		return uint8(i), true
	}
	return 0, false
}
