package plugin

import (
	"context"
	"time"

	"github.com/LdDl/mot-postprocessor/internal/metrics"
	"github.com/LdDl/mot-postprocessor/mot"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TrackerHandler binds wire messages to the track associator
type TrackerHandler struct {
	associator *mot.Associator
	logger     *zap.Logger
}

func NewTrackerHandler(associator *mot.Associator, logger *zap.Logger) *TrackerHandler {
	return &TrackerHandler{
		associator: associator,
		logger:     logger,
	}
}

// Handle implements Handler.
// Malformed frames are relayed back unchanged since the runtime always waits for a reply.
func (h *TrackerHandler) Handle(_ context.Context, payload []byte) ([]byte, error) {
	message, err := DecodeMessage(payload)
	if err != nil {
		metrics.FramesTotal.WithLabelValues(metrics.OutcomeMalformed).Inc()
		h.logger.Warn("can't decode message, relaying it back", zap.Error(err))
		return payload, nil
	}
	frame, err := message.Frame()
	if err != nil {
		metrics.FramesTotal.WithLabelValues(metrics.OutcomeMalformed).Inc()
		h.logger.Warn("malformed frame, relaying it back", zap.Error(err))
		return payload, nil
	}

	start := time.Now()
	result, err := h.associator.Associate(frame)
	metrics.AssociationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, mot.ErrMalformedInput) {
			metrics.FramesTotal.WithLabelValues(metrics.OutcomeMalformed).Inc()
			h.logger.Warn("malformed frame, relaying it back", zap.String("device_id", frame.DeviceID), zap.Error(err))
			return payload, nil
		}
		metrics.FramesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, errors.Wrap(err, "Can't track objects")
	}

	metrics.FramesTotal.WithLabelValues(metrics.OutcomeTracked).Inc()
	metrics.TracksCreatedTotal.Add(float64(result.Stats.Created))
	metrics.TracksEvictedTotal.Add(float64(result.Stats.Evicted))
	metrics.InvariantResetsTotal.Add(float64(result.Stats.Resets))
	metrics.DevicesTracked.Set(float64(h.associator.Registry().Len()))
	if ce := h.logger.Check(zap.DebugLevel, "frame tracked"); ce != nil {
		ce.Write(
			zap.String("device_id", frame.DeviceID),
			zap.Int("classes", len(result.IDs)),
			zap.Int("matched", result.Stats.Matched),
			zap.Int("created", result.Stats.Created),
			zap.Int("evicted", result.Stats.Evicted),
		)
	}

	message.SetObjectIDs(result)
	reply, err := message.Encode()
	if err != nil {
		metrics.FramesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}
	return reply, nil
}
