package config

import "time"

// Config is the fully resolved configuration
type Config struct {
	Workspace  Workspace  `koanf:"workspace"`
	Repository Repository `koanf:"repository"`
	Tools      Tools      `koanf:"tools"`
	Install    Install    `koanf:"install"`
	Timeouts   Timeouts   `koanf:"timeouts"`
	Preflight  bool       `koanf:"preflight"`
	Hint       Hint       `koanf:"hint"`
	Samples    Samples    `koanf:"samples"`
	Display    Display    `koanf:"display"`
}

// Workspace locates the checkout
type Workspace struct {
	Root string `koanf:"root"`
	Dir  string `koanf:"dir"`
}

// Repository describes what gets cloned
type Repository struct {
	URL    string `koanf:"url"`
	Branch string `koanf:"branch"`
	Depth  int    `koanf:"depth"`
}

// Tools names the external binaries
type Tools struct {
	Git     string   `koanf:"git"`
	Pip     string   `koanf:"pip"`
	PipArgs []string `koanf:"pip_args"`
}

// Install names the dependency manifest and the install target inside the checkout
type Install struct {
	Manifest string `koanf:"manifest"`
	Target   string `koanf:"target"`
}

// Timeouts bound the external tools. Zero means no limit.
type Timeouts struct {
	Clone   time.Duration `koanf:"clone"`
	Install time.Duration `koanf:"install"`
}

// Hint controls the closing message
type Hint struct {
	Python  string `koanf:"python"`
	Example string `koanf:"example"`
}

// Samples controls the optional sample script step
type Samples struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

// Display holds the panel wiring used by the sample scripts
type Display struct {
	Port       int  `koanf:"port"`
	CS         int  `koanf:"cs"`
	DC         int  `koanf:"dc"`
	Backlight  int  `koanf:"backlight"`
	Rotation   int  `koanf:"rotation"`
	Width      int  `koanf:"width"`
	Height     int  `koanf:"height"`
	OffsetLeft int  `koanf:"offset_left"`
	OffsetTop  int  `koanf:"offset_top"`
	BGR        bool `koanf:"bgr"`
	SPISpeedHz int  `koanf:"spi_speed_hz"`
}
