package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/sanasaryank/trio-admin-sub000/internal/config"
	"github.com/sanasaryank/trio-admin-sub000/internal/domain"
)

// Auditor publishes one audit event per completed location resolution so the
// console's analytics can track operator map activity.
// It implements the HTTP adapter's Auditor interface.
type Auditor struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewAuditor creates a Kafka producer for the configured audit topic.
func NewAuditor(cfg *config.Config, logger *slog.Logger) *Auditor {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAuditTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
	return &Auditor{writer: w, logger: logger}
}

// ResolutionEvent is the audit record published for every resolution.
type ResolutionEvent struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Address    string    `json:"address,omitempty"`
	CountryID  int64     `json:"countryId,omitempty"`
	CityID     int64     `json:"cityId,omitempty"`
	DistrictID int64     `json:"districtId,omitempty"`
	Matched    bool      `json:"matched"`
	ResolvedAt time.Time `json:"resolvedAt"`
}

// RecordResolution serializes and publishes a resolution to the audit topic.
func (a *Auditor) RecordResolution(ctx context.Context, coord domain.Coordinate, update domain.LocationUpdate) error {
	event := ResolutionEvent{
		Latitude:   coord.Lat,
		Longitude:  coord.Lon,
		Address:    update.Address,
		CountryID:  update.CountryID,
		CityID:     update.CityID,
		DistrictID: update.DistrictID,
		Matched:    update.CityID != 0,
		ResolvedAt: time.Now().UTC(),
	}

	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	return a.writer.WriteMessages(ctx, msg)
}

func (a *Auditor) Close() error {
	return a.writer.Close()
}

// serializeToMessage marshals a ResolutionEvent into a Kafka message keyed by
// coordinate, so repeated resolutions of the same spot land in one partition.
func serializeToMessage(event ResolutionEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize resolution event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(fmt.Sprintf("%.6f,%.6f", event.Latitude, event.Longitude)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "matched", Value: []byte(strconv.FormatBool(event.Matched))},
			{Key: "resolved_at", Value: []byte(event.ResolvedAt.Format(time.RFC3339))},
		},
	}, nil
}
