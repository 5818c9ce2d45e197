package common

// MetricKey identifies one of the metric kinds the display knows how to show
type MetricKey string

// Metric kinds
const (
	MetricIP       MetricKey = "ip"
	MetricHostname MetricKey = "hostname"
	MetricUptime   MetricKey = "uptime"
	MetricDisk     MetricKey = "disk"
	MetricCPU      MetricKey = "cpu"
	MetricCPUTemp  MetricKey = "cpu-temp"
	MetricMemory   MetricKey = "memory"
)

// AllMetricKeys lists every known metric kind, in catalog order
var AllMetricKeys = []MetricKey{
	MetricIP,
	MetricHostname,
	MetricUptime,
	MetricDisk,
	MetricCPU,
	MetricCPUTemp,
	MetricMemory,
}

// IsKnown returns true if the key is one of the enumerated metric kinds
func (key MetricKey) IsKnown() bool {
	for _, k := range AllMetricKeys {
		if k == key {
			return true
		}
	}

	return false
}

// Probe sources
const (
	SourceShell = "shell"
	SourceHost  = "host"
)

// PageKind is the closed set of page variants
type PageKind string

// Page kinds
const (
	PageText  PageKind = "text"
	PageChart PageKind = "chart"
	PageMeter PageKind = "meter"
)

// ChartKind selects how a chart page plots its history
type ChartKind string

// Chart kinds
const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
)

// MetricDefinition is the static description of a metric, as read from the catalog
type MetricDefinition struct {
	Key        MetricKey
	Source     string
	Command    string
	JSONFields []string
	Format     string
	Chartable  bool
}
