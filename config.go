package movingquad

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults match the fixed constants of the program.
const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultTitle   = "LearnOpenGL"
	DefaultGLMajor = 3
	DefaultGLMinor = 3
)

// Environment keys read by LoadConfig.
const (
	EnvWidth         = "MOVINGQUAD_WIDTH"
	EnvHeight        = "MOVINGQUAD_HEIGHT"
	EnvTitle         = "MOVINGQUAD_TITLE"
	EnvGLMajor       = "MOVINGQUAD_GL_MAJOR"
	EnvGLMinor       = "MOVINGQUAD_GL_MINOR"
	EnvVSync         = "MOVINGQUAD_VSYNC"
	EnvVerbose       = "MOVINGQUAD_VERBOSE"
	EnvStrictShaders = "MOVINGQUAD_STRICT_SHADERS"
)

// Config holds window and startup settings.
type Config struct {
	Width, Height    int
	Title            string
	GLMajor, GLMinor int
	VSync            bool
	Verbose          bool

	// Hidden creates the window invisible, for offscreen captures.
	Hidden bool

	// StrictShaders makes a failed compile or link fatal at startup.
	// When false, diagnostics are logged and the program keeps running
	// with whatever program object the driver produced.
	StrictShaders bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Title:   DefaultTitle,
		GLMajor: DefaultGLMajor,
		GLMinor: DefaultGLMinor,
		VSync:   true,
	}
}

// LoadConfig starts from DefaultConfig, applies values from the given
// dotenv files, then the process environment. Missing files are skipped;
// the environment wins over files, and later files win over earlier ones.
func LoadConfig(paths ...string) (Config, error) {
	vars := map[string]string{}
	for _, p := range paths {
		m, err := godotenv.Read(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", p, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	for _, k := range []string{EnvWidth, EnvHeight, EnvTitle, EnvGLMajor, EnvGLMinor, EnvVSync, EnvVerbose, EnvStrictShaders} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}
	return ParseConfig(vars)
}

// ParseConfig applies vars on top of DefaultConfig.
func ParseConfig(vars map[string]string) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvGLMajor, &cfg.GLMajor},
		{EnvGLMinor, &cfg.GLMinor},
	}
	for _, f := range ints {
		v, ok := vars[f.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvVSync, &cfg.VSync},
		{EnvVerbose, &cfg.Verbose},
		{EnvStrictShaders, &cfg.StrictShaders},
	}
	for _, f := range bools {
		v, ok := vars[f.key]
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = b
	}

	if v, ok := vars[EnvTitle]; ok {
		cfg.Title = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no window can be created with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is below the required 3.3 core", c.GLMajor, c.GLMinor)
	}
	return nil
}
