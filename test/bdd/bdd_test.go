package bdd

import (
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftchain-go/test/bdd/steps"
	"github.com/andrescamacho/craftchain-go/test/helpers"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	steps.InitializeResolutionScenario(sc)
	steps.InitializeStoredGroupScenario(sc)
}

func TestMain(m *testing.M) {
	// One in-memory database for all scenarios, truncated before each one
	if err := helpers.InitializeSharedTestDB(); err != nil {
		panic("Failed to initialize shared test database: " + err.Error())
	}

	code := m.Run()
	helpers.CloseSharedTestDB()
	os.Exit(code)
}
