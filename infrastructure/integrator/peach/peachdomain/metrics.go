package peachdomain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MetricsBucket é um intervalo de tempo retornado por GET /admin/metrics
type MetricsBucket struct {
	StartTime *BucketTime    `json:"start_time"`
	EndTime   *BucketTime    `json:"end_time"`
	Metrics   *BucketMetrics `json:"metrics"`
}

func (b MetricsBucket) Validate() error {
	switch {
	case b.StartTime == nil:
		return fmt.Errorf("missing required field: start_time")
	case b.EndTime == nil:
		return fmt.Errorf("missing required field: end_time")
	case b.Metrics == nil:
		return fmt.Errorf("missing required field: metrics")
	}
	return nil
}

// MetricsResponse aceita tanto uma lista de buckets quanto {"buckets": [...]}
type MetricsResponse struct {
	Buckets []MetricsBucket
}

func (r *MetricsResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty metrics response")
	}

	switch trimmed[0] {
	case '[':
		return json.Unmarshal(trimmed, &r.Buckets)
	case '{':
		var wrapped struct {
			Buckets *[]MetricsBucket `json:"buckets"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return err
		}
		if wrapped.Buckets == nil {
			return fmt.Errorf("expected list of buckets or object with 'buckets' field")
		}
		r.Buckets = *wrapped.Buckets
		return nil
	default:
		return fmt.Errorf("expected list of buckets or object with 'buckets' field")
	}
}

// sem fuso horário o horário é tratado como UTC
var bucketTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// BucketTime aceita ISO-8601 ou epoch em milissegundos
type BucketTime struct {
	time.Time
}

func (t *BucketTime) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		for _, layout := range bucketTimeLayouts {
			if parsed, err := time.Parse(layout, raw); err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
		return fmt.Errorf("invalid bucket time %q", raw)
	}

	ms, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bucket time %s: %w", trimmed, err)
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}

type BucketMetrics struct {
	Registrations    RegistrationMetrics  `json:"registrations"`
	Messages         MessageMetrics       `json:"messages"`
	PaymentMethods   PaymentMethodMetrics `json:"payment_methods"`
	TermsAcceptances TermsMetrics         `json:"terms_acceptances"`
	Media            MediaMetrics         `json:"media"`
}

type RegistrationMetrics struct {
	Anonymous int64 `json:"anonymous"`
	Email     int64 `json:"email"`
	Google    int64 `json:"google"`
	Facebook  int64 `json:"facebook"`
	Total     int64 `json:"total"`
}

type MessageMetrics struct {
	Total             int64 `json:"total"`
	CompanionChats    int64 `json:"companion_chats"`
	ChatRoomUserChats int64 `json:"chat_room_user_chats"`
	TotalUserChats    int64 `json:"total_user_chats"`
}

// UnmarshalJSON ignora valores que não sejam objeto
func (m *MessageMetrics) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		return nil
	}
	type alias MessageMetrics
	return json.Unmarshal(data, (*alias)(m))
}

type PaymentMethodMetrics struct {
	PaymentMethods struct {
		Added int64 `json:"added"`
	} `json:"payment_methods"`
}

type TermsMetrics struct {
	Count int64 `json:"count"`
}

type MediaMetrics struct {
	Total int64 `json:"total"`
}

func (m *MediaMetrics) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		return nil
	}
	type alias MediaMetrics
	return json.Unmarshal(data, (*alias)(m))
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
