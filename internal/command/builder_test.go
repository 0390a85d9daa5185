package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/testpick/testpick/pkg/config"
)

func builderConfig() *config.Config {
	return &config.Config{
		Version:        "1.0",
		TestDir:        "test",
		Suffixes:       []string{"_test.x"},
		Command:        "run",
		VerboseCommand: "run --verbose",
		SeedEnv:        "SEED",
		ParallelEnv:    "PARALLEL",
		Env:            "FOO=1",
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(builderConfig())

	got := b.Build([]string{"a_test.x", "b_test.x"}, BuildOptions{Seed: 42})
	assert.Equal(t, "FOO=1 SEED=42 run a_test.x b_test.x", got)
}

func TestBuilder_Build_ParallelWorkers(t *testing.T) {
	b := NewBuilder(builderConfig())

	got := b.Build([]string{"a_test.x"}, BuildOptions{Seed: 42, Parallel: 4})
	assert.Equal(t, "FOO=1 SEED=42 PARALLEL=4 run a_test.x", got)
}

func TestBuilder_Build_Verbose(t *testing.T) {
	b := NewBuilder(builderConfig())

	got := b.Build([]string{"a_test.x"}, BuildOptions{Seed: 7, Verbose: true})
	assert.Equal(t, "FOO=1 SEED=7 run --verbose a_test.x", got)
}

func TestBuilder_Build_NoStaticEnv(t *testing.T) {
	cfg := builderConfig()
	cfg.Env = ""
	b := NewBuilder(cfg)

	got := b.Build([]string{"a_test.x"}, BuildOptions{Seed: 1})
	assert.Equal(t, "SEED=1 run a_test.x", got)
}

func TestBuilder_Build_EmptyFileList(t *testing.T) {
	b := NewBuilder(builderConfig())

	got := b.Build(nil, BuildOptions{Seed: 42})
	assert.Equal(t, "FOO=1 SEED=42 run", got)
}

func TestBuilder_Build_NoQuoting(t *testing.T) {
	b := NewBuilder(builderConfig())

	// Paths with spaces pass through unquoted; documented limitation
	got := b.Build([]string{"my dir/a_test.x"}, BuildOptions{Seed: 1})
	assert.Equal(t, "FOO=1 SEED=1 run my dir/a_test.x", got)
}
