package metrics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("metrics")

type metric struct {
	definition common.MetricDefinition
	active     bool
	lastValue  string
	history    *ring
}

// ArgsMetricStore is the DTO used to create a new metric store
type ArgsMetricStore struct {
	Prober   Prober
	Catalog  []common.MetricDefinition
	Capacity int
}

type metricStore struct {
	prober   Prober
	metrics  map[common.MetricKey]*metric
	order    []common.MetricKey
	capacity int
}

// NewMetricStore creates the metric store out of the static catalog. All metrics start inactive.
func NewMetricStore(args ArgsMetricStore) (*metricStore, error) {
	if check.IfNil(args.Prober) {
		return nil, errors.New("nil prober")
	}
	if args.Capacity < 1 {
		return nil, fmt.Errorf("%w: invalid history capacity %d", common.ErrConfiguration, args.Capacity)
	}

	store := &metricStore{
		prober:   args.Prober,
		metrics:  make(map[common.MetricKey]*metric, len(args.Catalog)),
		order:    make([]common.MetricKey, 0, len(args.Catalog)),
		capacity: args.Capacity,
	}

	for _, definition := range args.Catalog {
		err := checkDefinition(definition)
		if err != nil {
			return nil, err
		}
		if _, exists := store.metrics[definition.Key]; exists {
			return nil, fmt.Errorf("%w: metric %q is defined more than once", common.ErrConfiguration, definition.Key)
		}

		m := &metric{
			definition: definition,
		}
		if definition.Chartable {
			m.history = newRing(args.Capacity)
		}

		store.metrics[definition.Key] = m
		store.order = append(store.order, definition.Key)
	}

	return store, nil
}

func checkDefinition(definition common.MetricDefinition) error {
	if !definition.Key.IsKnown() {
		return fmt.Errorf("%w: unknown metric kind %q", common.ErrConfiguration, definition.Key)
	}

	switch definition.Source {
	case common.SourceShell, "":
		if len(strings.TrimSpace(definition.Command)) == 0 {
			return fmt.Errorf("%w: metric %q has no command", common.ErrConfiguration, definition.Key)
		}
	case common.SourceHost:
	default:
		return fmt.Errorf("%w: metric %q has unknown source %q", common.ErrConfiguration, definition.Key, definition.Source)
	}

	return nil
}

// Activate marks the metric as displayed by at least one page. Only active metrics are probed.
func (store *metricStore) Activate(key common.MetricKey) error {
	m, err := store.get(key)
	if err != nil {
		return err
	}

	m.active = true

	return nil
}

// Fetch runs the probe of the metric and stores its output as the last value.
// On failure the previous value is retained.
func (store *metricStore) Fetch(ctx context.Context, key common.MetricKey) error {
	m, err := store.get(key)
	if err != nil {
		return err
	}

	output, err := store.prober.Probe(ctx, m.definition)
	if err != nil {
		return fmt.Errorf("%w: metric %s: %w", common.ErrProbe, key, err)
	}
	if !utf8.ValidString(output) {
		return fmt.Errorf("%w: metric %s returned non-text output", common.ErrProbe, key)
	}

	output = strings.TrimSpace(output)
	if len(output) == 0 {
		return fmt.Errorf("%w: metric %s returned empty output", common.ErrProbe, key)
	}

	m.lastValue = output

	return nil
}

// RecordSample parses the first field of the last value and pushes it into the metric history.
// Non chartable or inactive metrics are left untouched.
func (store *metricStore) RecordSample(key common.MetricKey) error {
	m, err := store.get(key)
	if err != nil {
		return err
	}
	if !m.active || !m.definition.Chartable {
		return nil
	}

	value, err := parseSample(m.lastValue)
	if err != nil {
		return fmt.Errorf("%w: metric %s: %w", common.ErrParse, key, err)
	}

	m.history.push(value)

	return nil
}

func parseSample(record string) (float64, error) {
	field := PrimaryField(record)
	if field == "" {
		return 0, errors.New("empty numeric field")
	}

	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("non finite value %q", field)
	}

	return value, nil
}

// RefreshAll fetches and samples every active metric, sequentially. Failures are logged and skipped;
// the number of failed metrics is returned.
func (store *metricStore) RefreshAll(ctx context.Context) int {
	numFailures := 0
	for _, key := range store.order {
		if !store.metrics[key].active {
			continue
		}

		err := store.Fetch(ctx, key)
		if err != nil {
			log.Warn("metric fetch failed, keeping previous value", "metric", key, "error", err)
			numFailures++
			continue
		}

		err = store.RecordSample(key)
		if err != nil {
			log.Warn("metric sample skipped", "metric", key, "error", err)
			numFailures++
		}
	}

	log.Trace("metrics refreshed", "failures", numFailures)

	return numFailures
}

// Has returns true if the metric is part of the catalog
func (store *metricStore) Has(key common.MetricKey) bool {
	_, ok := store.metrics[key]
	return ok
}

// IsChartable returns true if the metric keeps a numeric history
func (store *metricStore) IsChartable(key common.MetricKey) bool {
	m, ok := store.metrics[key]
	return ok && m.definition.Chartable
}

// IsActive returns true if the metric is displayed by at least one page
func (store *metricStore) IsActive(key common.MetricKey) bool {
	m, ok := store.metrics[key]
	return ok && m.active
}

// LastValue returns the raw record of the last successful probe
func (store *metricStore) LastValue(key common.MetricKey) string {
	m, ok := store.metrics[key]
	if !ok {
		return ""
	}

	return m.lastValue
}

// Text returns the last value rendered through the metric display format
func (store *metricStore) Text(key common.MetricKey) string {
	m, ok := store.metrics[key]
	if !ok {
		return ""
	}

	return FormatRecord(m.definition.Format, m.lastValue)
}

// History returns a copy of the metric samples, most recent first
func (store *metricStore) History(key common.MetricKey) []float64 {
	m, ok := store.metrics[key]
	if !ok || m.history == nil {
		return nil
	}

	return m.history.snapshot()
}

// ActiveKeys returns the active metrics, in catalog order
func (store *metricStore) ActiveKeys() []common.MetricKey {
	keys := make([]common.MetricKey, 0, len(store.order))
	for _, key := range store.order {
		if store.metrics[key].active {
			keys = append(keys, key)
		}
	}

	return keys
}

// Capacity returns the maximum history length of a chartable metric
func (store *metricStore) Capacity() int {
	return store.capacity
}

func (store *metricStore) get(key common.MetricKey) (*metric, error) {
	m, ok := store.metrics[key]
	if !ok {
		return nil, fmt.Errorf("%w: metric %q is not defined", common.ErrConfiguration, key)
	}

	return m, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (store *metricStore) IsInterfaceNil() bool {
	return store == nil
}
