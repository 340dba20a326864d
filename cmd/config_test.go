package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/perfcompare"
)

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvDistinguished, "gold")
	t.Setenv(EnvUpdateInterval, "2m")
	t.Setenv(EnvRetryInterval, "5s")
	t.Setenv(EnvCoinCapURL, "http://localhost:1234")

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if c.Distinguished != perfcompare.Gold || c.Baseline != perfcompare.SP500 {
		t.Errorf("assets = %s, %s", c.Distinguished, c.Baseline)
	}
	if c.UpdateInterval != 2*time.Minute || c.RetryInterval != 5*time.Second {
		t.Errorf("intervals = %v, %v", c.UpdateInterval, c.RetryInterval)
	}
	sources := c.Sources()
	if sources[0].Name != "coingecko" || sources[1].URL != "http://localhost:1234" {
		t.Errorf("Sources() = %+v", sources)
	}
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PERF_DATASET=returns.json\nPERF_BASELINE=nasdaq\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets the variables, let t restore them
	t.Setenv(EnvDataset, "")
	os.Unsetenv(EnvDataset)
	t.Setenv(EnvBaseline, "")
	os.Unsetenv(EnvBaseline)

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if c.Dataset != "returns.json" || c.Baseline != perfcompare.Nasdaq {
		t.Errorf("config = %+v", c)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvBaseline, "tulips")
	t.Setenv(EnvRetryInterval, "-1s")

	c, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() accepted invalid values")
	}
	if !strings.Contains(err.Error(), EnvBaseline) || !strings.Contains(err.Error(), EnvRetryInterval) {
		t.Errorf("LoadConfig() error = %v", err)
	}
	if c.Baseline != perfcompare.SP500 || c.RetryInterval != DefaultConfig().RetryInterval {
		t.Errorf("invalid values replaced the defaults: %+v", c)
	}
}
