package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

const (
	bytesInGiB    = 1024 * 1024 * 1024
	rootMount     = "/"
	secondsInDay  = 86400
	secondsInHour = 3600
)

type hostReading func(ctx context.Context) (string, error)

type hostProber struct {
	readings map[string]hostReading
}

// NewHostProber creates a prober that reads the host statistics directly, without spawning processes.
// The metric command names the reading; the produced records mirror the stock shell commands.
func NewHostProber() *hostProber {
	return &hostProber{
		readings: map[string]hostReading{
			string(common.MetricIP):       readIP,
			string(common.MetricHostname): readHostname,
			string(common.MetricUptime):   readUptime,
			string(common.MetricDisk):     readDisk,
			string(common.MetricCPU):      readLoad,
			string(common.MetricCPUTemp):  readTemperature,
			string(common.MetricMemory):   readMemory,
		},
	}
}

// Probe returns the record of the host reading named by the metric command
func (p *hostProber) Probe(ctx context.Context, definition common.MetricDefinition) (string, error) {
	name := strings.TrimSpace(definition.Command)
	if name == "" {
		name = string(definition.Key)
	}

	reading, ok := p.readings[name]
	if !ok {
		return "", errUnknownReading(name)
	}

	return reading(ctx)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (p *hostProber) IsInterfaceNil() bool {
	return p == nil
}

func readIP(ctx context.Context) (string, error) {
	interfaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return "", err
	}

	for _, iface := range interfaces {
		if !hasFlag(iface.Flags, "up") || hasFlag(iface.Flags, "loopback") {
			continue
		}

		for _, addr := range iface.Addrs {
			ip, _, _ := strings.Cut(addr.Addr, "/")
			if strings.Contains(ip, ".") {
				return ip, nil
			}
		}
	}

	return "", errors.New("no IPv4 address found")
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}

	return false
}

func readHostname(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}

	return info.Hostname, nil
}

func readUptime(ctx context.Context) (string, error) {
	seconds, err := host.UptimeWithContext(ctx)
	if err != nil {
		return "", err
	}

	return formatUptime(seconds), nil
}

func formatUptime(seconds uint64) string {
	days := seconds / secondsInDay
	hours := (seconds % secondsInDay) / secondsInHour
	minutes := (seconds % secondsInHour) / 60

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", minutes))

	return strings.Join(parts, " ")
}

func readDisk(ctx context.Context) (string, error) {
	usage, err := disk.UsageWithContext(ctx, rootMount)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d,%d,%.0f%%", usage.Used/bytesInGiB, usage.Total/bytesInGiB, usage.UsedPercent), nil
}

func readLoad(ctx context.Context) (string, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%.2f", avg.Load1), nil
}

// readTemperature reports the CPU temperature in Fahrenheit, as the stock shell command does
func readTemperature(ctx context.Context) (string, error) {
	sensors, err := host.SensorsTemperaturesWithContext(ctx)
	if len(sensors) == 0 {
		if err == nil {
			err = errors.New("no temperature sensors found")
		}
		return "", err
	}

	sensor := sensors[0]
	for _, s := range sensors {
		if strings.Contains(strings.ToLower(s.SensorKey), "cpu") {
			sensor = s
			break
		}
	}

	return fmt.Sprintf("%.2f", sensor.Temperature*1.8+32), nil
}

func readMemory(ctx context.Context) (string, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%.1f,%.1f,%.1f",
		float64(vm.Used)/bytesInGiB,
		float64(vm.Total)/bytesInGiB,
		vm.UsedPercent,
	), nil
}

// TotalMemoryGiB returns the installed memory of the host, in GiB
func TotalMemoryGiB(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}

	return float64(vm.Total) / bytesInGiB, nil
}
