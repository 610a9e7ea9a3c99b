package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// Keys of a team.integrationLogs entry.
const (
	FieldServiceID   = "service_id"
	FieldServiceType = "service_type"
	FieldAppID       = "app_id"
	FieldAppType     = "app_type"
	FieldChangeType  = "change_type"
	FieldChannel     = "channel"
	FieldDate        = "date"
)

type RecordKind int

const (
	KindUnclassified RecordKind = iota
	KindService
	KindApp
)

func (k RecordKind) String() string {
	switch k {
	case KindService:
		return "service"
	case KindApp:
		return "app"
	default:
		return "unclassified"
	}
}

// LogRecord is one integration log entry, classified once when it is decoded.
//
// Example JSON (service integration):
//
//	{
//	  "service_id": "1234567890",
//	  "service_type": "Google Calendar",
//	  "user_id": "U0AB12CDE",
//	  "user_name": "alice",
//	  "channel": "C0AB12CDE",
//	  "date": "1392163200",
//	  "change_type": "added",
//	  "scope": "incoming-webhook"
//	}
//
// Raw keeps the entry exactly as the server sent it; the typed fields are derived from it.
type LogRecord struct {
	Kind          RecordKind
	IntegrationID string
	ChangeType    string
	ServiceType   string
	AppType       string
	Channel       string
	Date          string

	HasServiceType bool
	HasAppType     bool
	HasChannel     bool

	Raw json.RawMessage
}

var recordParsers fastjson.ParserPool

// ParseLogRecord classifies a raw log entry. service_id wins over app_id when both are present.
// Entries that are not JSON objects, or carry neither identity key, are unclassified.
// A key holding null counts as absent.
func ParseLogRecord(raw []byte) LogRecord {
	record := LogRecord{Raw: append(json.RawMessage(nil), raw...)}

	p := recordParsers.Get()
	defer recordParsers.Put(p)

	v, err := p.ParseBytes(raw)
	if err != nil || v.Type() != fastjson.TypeObject {
		return record
	}

	if id, ok := scalarField(v, FieldServiceID); ok {
		record.Kind = KindService
		record.IntegrationID = id
	} else if id, ok := scalarField(v, FieldAppID); ok {
		record.Kind = KindApp
		record.IntegrationID = id
	}

	record.ChangeType, _ = scalarField(v, FieldChangeType)
	record.Date, _ = scalarField(v, FieldDate)
	record.ServiceType, record.HasServiceType = scalarField(v, FieldServiceType)
	record.AppType, record.HasAppType = scalarField(v, FieldAppType)
	record.Channel, record.HasChannel = scalarField(v, FieldChannel)

	return record
}

// scalarField renders the value under key as a string: strings are unquoted, anything else
// keeps its JSON text (numbers, booleans).
func scalarField(v *fastjson.Value, key string) (string, bool) {
	field := v.Get(key)
	if field == nil || field.Type() == fastjson.TypeNull {
		return "", false
	}
	if field.Type() == fastjson.TypeString {
		return string(field.GetStringBytes()), true
	}
	return field.String(), true
}

// IntegrationType is service_type when present, otherwise app_type.
func (r LogRecord) IntegrationType() string {
	if r.HasServiceType {
		return r.ServiceType
	}
	return r.AppType
}

// MarshalJSON writes the record back exactly as it was received.
func (r LogRecord) MarshalJSON() ([]byte, error) {
	if len(r.Raw) == 0 {
		return []byte("null"), nil
	}
	return r.Raw, nil
}

func (r *LogRecord) UnmarshalJSON(data []byte) error {
	*r = ParseLogRecord(data)
	return nil
}

// CompareDates orders two log dates. Slack sends unix seconds as strings, so values that both
// parse as numbers compare numerically; anything else falls back to a string comparison.
func CompareDates(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
