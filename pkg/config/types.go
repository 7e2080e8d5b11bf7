package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Profile describes what the environment checks validate: which interpreter
// to probe, which distributions must be installed, and how the cloud CLI is
// invoked.
type Profile struct {
	// APIVersion is the config API version
	APIVersion string `yaml:"apiVersion,omitempty"`

	// Kind is the config kind (should be "CheckProfile")
	Kind string `yaml:"kind,omitempty"`

	// Python configures the interpreter checks
	Python PythonConfig `yaml:"python,omitempty"`

	// Packages lists the distributions that must be installed
	Packages []Package `yaml:"packages,omitempty"`

	// Gcloud configures the cloud CLI check
	Gcloud GcloudConfig `yaml:"gcloud,omitempty"`

	// Timeout bounds every external probe (e.g. "5s")
	Timeout string `yaml:"timeout,omitempty"`
}

// PythonConfig configures the interpreter version and package probes
type PythonConfig struct {
	// Interpreter is the python binary to probe
	Interpreter string `yaml:"interpreter,omitempty"`

	// MinVersion is the minimum required version (major.minor, e.g. "3.10")
	MinVersion string `yaml:"minVersion,omitempty"`
}

// Package pairs a distribution's display name with the identifier used for
// the installed-metadata lookup; the two may differ.
type Package struct {
	// Name is the human-readable display name (also the pip install target)
	Name string `yaml:"name"`

	// Dist is the lookup identifier queried against installed metadata.
	// Defaults to Name when empty.
	Dist string `yaml:"dist,omitempty"`
}

// GcloudConfig configures the cloud CLI check
type GcloudConfig struct {
	// Binary is the gcloud executable name
	Binary string `yaml:"binary,omitempty"`
}

// DefaultProfile returns the built-in check profile for the agent demo
func DefaultProfile() *Profile {
	return &Profile{
		APIVersion: "v1alpha1",
		Kind:       "CheckProfile",
		Python: PythonConfig{
			Interpreter: "python3",
			MinVersion:  "3.10",
		},
		Packages: []Package{
			{Name: "google-genai", Dist: "google-genai"},
			{Name: "google-adk", Dist: "google-adk"},
			{Name: "google-cloud-aiplatform", Dist: "google-cloud-aiplatform"},
			{Name: "a2a-sdk", Dist: "a2a-sdk"},
		},
		Gcloud: GcloudConfig{
			Binary: "gcloud",
		},
		Timeout: "5s",
	}
}

// Normalize applies defaults to unset fields
func (p *Profile) Normalize() {
	if p.APIVersion == "" {
		p.APIVersion = "v1alpha1"
	}
	if p.Kind == "" {
		p.Kind = "CheckProfile"
	}
	if p.Python.Interpreter == "" {
		p.Python.Interpreter = "python3"
	}
	if p.Python.MinVersion == "" {
		p.Python.MinVersion = "3.10"
	}
	if p.Gcloud.Binary == "" {
		p.Gcloud.Binary = "gcloud"
	}
	if p.Timeout == "" {
		p.Timeout = "5s"
	}
	for i := range p.Packages {
		if p.Packages[i].Dist == "" {
			p.Packages[i].Dist = p.Packages[i].Name
		}
	}
}

// Validate checks the profile for errors
func (p *Profile) Validate() error {
	if p.Python.Interpreter == "" {
		return fmt.Errorf("python interpreter cannot be empty")
	}
	if p.Gcloud.Binary == "" {
		return fmt.Errorf("gcloud binary cannot be empty")
	}
	if _, _, err := ParseMajorMinor(p.Python.MinVersion); err != nil {
		return fmt.Errorf("invalid minimum python version %q: %w", p.Python.MinVersion, err)
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout %q: %w", p.Timeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive, got: %s", p.Timeout)
	}
	for _, pkg := range p.Packages {
		if pkg.Name == "" {
			return fmt.Errorf("package entries must have a name")
		}
	}
	return nil
}

// ProbeTimeout returns the parsed probe timeout. Call Validate first; an
// unparseable value falls back to 5s.
func (p *Profile) ProbeTimeout() time.Duration {
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// MinPythonVersion returns the parsed minimum (major, minor) version pair
func (p *Profile) MinPythonVersion() (int, int) {
	major, minor, err := ParseMajorMinor(p.Python.MinVersion)
	if err != nil {
		return 3, 10
	}
	return major, minor
}

// ParseMajorMinor extracts the major and minor components from a version
// string such as "3.10" or "3.12.1"
func ParseMajorMinor(version string) (int, int, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")

	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid version format, expected at least major.minor")
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid major version: %w", err)
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minor version: %w", err)
	}

	return major, minor, nil
}
