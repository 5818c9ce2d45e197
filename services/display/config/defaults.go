package config

// DefaultConfig returns the stock catalog and page rotation for a 128x32 SSD1306 on a Raspberry Pi
func DefaultConfig() Config {
	cfg := Config{
		Panel: PanelConfig{
			Width:  defaultWidth,
			Height: defaultHeight,
			I2CBus: defaultI2CBus,
		},
		RefreshIntervalInSeconds:  defaultRefreshIntervalInSecs,
		RotationIntervalInSeconds: defaultRotationIntervalInSecs,
		SplashDurationInSeconds:   defaultSplashDurationInSeconds,
		SplashText:                defaultSplashText,
		TickIntervalInMillis:      defaultTickIntervalInMillis,
		ProbeTimeoutInSeconds:     defaultProbeTimeoutInSeconds,
		Metrics: []MetricConfig{
			{
				Key:     "ip",
				Command: `hostname -I | cut -d' ' -f1 | awk '{printf "%s", $1}'`,
				Format:  "IP: {0}",
			},
			{
				Key:     "hostname",
				Command: `hostname | cut -d' ' -f1 | awk '{printf "%s", $1}'`,
				Format:  "HOST: {0}",
			},
			{
				Key:     "uptime",
				Command: `uptime -p | sed 's/^up //; s/ day, */d /; s/ days, */d /; s/ hour, */h /; s/ hours, */h /; s/ minute.*/m/; s/ minutes.*/m/'`,
				Format:  "UP: {0}",
			},
			{
				Key:       "disk",
				Command:   `df -h | awk '$NF=="/"{printf "%d,%d,%s",$3,$2,$5}'`,
				Format:    "DISK: {0}/{1}G ({2})",
				Chartable: true,
			},
			{
				Key:       "cpu",
				Command:   `top -bn1 | grep load | awk '{printf "%.2f", $(NF-2)}'`,
				Format:    "CPU: {0}%",
				Chartable: true,
			},
			{
				Key:       "cpu-temp",
				Command:   `cat /sys/class/thermal/thermal_zone0/temp | awk '{printf "%.2f", $1/1000*1.8+32}'`,
				Format:    "TEMP: {0}°",
				Chartable: true,
			},
			{
				Key:       "memory",
				Command:   `free -m | awk 'NR==2{printf "%.1f,%.1f,%.1f", $3/1024,$2/1024,$3*100/$2 }'`,
				Format:    "M: {0}/{1}G ({2}%)",
				Chartable: true,
			},
		},
		Pages: []PageConfig{
			{
				Name:    "summary",
				Type:    "text",
				Metrics: []string{"ip", "hostname", "uptime"},
			},
			{
				Name:    "Temp",
				Type:    "meter",
				Metrics: []string{"cpu-temp"},
				Low:     floatPtr(0),
				High:    floatPtr(200),
				Warning: 185,
			},
			{
				Name:    "CPU",
				Type:    "chart",
				Chart:   "line",
				Metrics: []string{"cpu"},
				Low:     floatPtr(0),
				High:    floatPtr(100),
			},
			{
				Name:                "Memory",
				Type:                "chart",
				Chart:               "bar",
				Metrics:             []string{"memory"},
				Low:                 floatPtr(0),
				HighFromTotalMemory: true,
			},
			{
				Name:    "Disk",
				Type:    "meter",
				Metrics: []string{"disk"},
				Low:     floatPtr(0),
				High:    floatPtr(118),
				Boxes:   20,
			},
		},
	}

	ApplyDefaults(&cfg)

	return cfg
}

func floatPtr(value float64) *float64 {
	return &value
}
