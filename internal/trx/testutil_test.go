package trx_test

import (
	"encoding/xml"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trx-reporter/internal/envinfo"
	"trx-reporter/internal/trx"
)

// Parsed view of a TRX document, used to assert on generated output.
type testRun struct {
	XMLName xml.Name `xml:"TestRun"`
	Xmlns   string   `xml:"xmlns,attr"`
	ID      string   `xml:"id,attr"`
	Name    string   `xml:"name,attr"`
	RunUser string   `xml:"runUser,attr"`

	TestSettings struct {
		Name string `xml:"name,attr"`
		ID   string `xml:"id,attr"`
	} `xml:"TestSettings"`
	Times struct {
		Creation string `xml:"creation,attr"`
		Queuing  string `xml:"queuing,attr"`
		Start    string `xml:"start,attr"`
		Finish   string `xml:"finish,attr"`
	} `xml:"Times"`
	ResultSummary struct {
		Outcome  string `xml:"outcome,attr"`
		Counters struct {
			Total    int `xml:"total,attr"`
			Executed int `xml:"executed,attr"`
			Passed   int `xml:"passed,attr"`
			Failed   int `xml:"failed,attr"`
			Error    int `xml:"error,attr"`
		} `xml:"Counters"`
	} `xml:"ResultSummary"`
	UnitTests []struct {
		Name      string `xml:"name,attr"`
		ID        string `xml:"id,attr"`
		Storage   string `xml:"storage,attr"`
		Execution struct {
			ID string `xml:"id,attr"`
		} `xml:"Execution"`
		TestMethod struct {
			CodeBase  string `xml:"codeBase,attr"`
			Name      string `xml:"name,attr"`
			ClassName string `xml:"className,attr"`
		} `xml:"TestMethod"`
	} `xml:"TestDefinitions>UnitTest"`
	TestLists []struct {
		Name string `xml:"name,attr"`
		ID   string `xml:"id,attr"`
	} `xml:"TestLists>TestList"`
	TestEntries []struct {
		TestID      string `xml:"testId,attr"`
		ExecutionID string `xml:"executionId,attr"`
		TestListID  string `xml:"testListId,attr"`
	} `xml:"TestEntries>TestEntry"`
	Results []unitTestResult `xml:"Results>UnitTestResult"`
}

type unitTestResult struct {
	TestID       string  `xml:"testId,attr"`
	ExecutionID  string  `xml:"executionId,attr"`
	TestName     string  `xml:"testName,attr"`
	ComputerName string  `xml:"computerName,attr"`
	Duration     string  `xml:"duration,attr"`
	StartTime    string  `xml:"startTime,attr"`
	EndTime      string  `xml:"endTime,attr"`
	TestType     string  `xml:"testType,attr"`
	Outcome      string  `xml:"outcome,attr"`
	TestListID   string  `xml:"testListId,attr"`
	Message      *string `xml:"Output>ErrorInfo>Message"`
	ResultFiles  []struct {
		Path string `xml:"path,attr"`
	} `xml:"ResultFiles>ResultFile"`
}

var fixedNow = time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

func sequentialIDs() trx.IDGenerator {
	n := 0
	return trx.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func testOptions() trx.Options {
	return trx.Options{
		IDs: sequentialIDs(),
		Now: func() time.Time { return fixedNow },
		Resolver: envinfo.Resolver{
			Hostname:    func() (string, error) { return "build-01", nil },
			CurrentUser: func() (string, error) { return "ci", nil },
		},
		WorkDir: "/work",
	}
}

func parse(t *testing.T, doc string) testRun {
	t.Helper()
	var run testRun
	require.NoError(t, xml.Unmarshal([]byte(doc), &run), "document must be well-formed")
	return run
}
