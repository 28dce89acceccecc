package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/finboard/config"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

const feed = `{"symbol": "AAPL", "data": [
  {"date": "2024-03-31", "open_price": 12, "close_price": 12, "high_price": 13, "low_price": 11},
  {"date": "2024-03-30", "open_price": 11, "close_price": 11, "high_price": 12, "low_price": 10},
  {"date": "2024-03-29", "open_price": 10, "close_price": 10, "high_price": 11, "low_price": 9},
  {"date": "someday", "open_price": 10, "close_price": 10, "high_price": 11, "low_price": 9},
  {"date": "2024-01-02", "open_price": 1, "close_price": 1, "high_price": 2, "low_price": 1}
]}`

const payments = `[
  {"symbol": "KO", "payment_date": "2024-01-15", "dividend_amount": 100, "currency": "USD"},
  {"symbol": "KO", "payment_date": "2024-01-20", "dividend_amount": 50, "currency": "USD"},
  {"symbol": "PG", "payment_date": "2024-03-01", "dividend_amount": 75, "currency": "USD"},
  {"symbol": "PG", "payment_date": "2023-11-01", "dividend_amount": 30, "currency": "USD"}
]`

func TestChartReport(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Prices = config.Source{File: writeFile(t, "prices.json", feed), Path: "$.data"}

	tests := []struct {
		name string
		cmd  chartCmd
		want []string
	}{
		{
			name: "window flag",
			cmd:  chartCmd{token: "5d", date: "2024-03-31", symbol: "AAPL"},
			want: []string{"AAPL over 5 days", "March 26, 2024", "+$2.00", "+20.00%", "Mar 29", `"someday"`},
		},
		{
			name: "configured window",
			cmd:  chartCmd{date: "2024-03-31"},
			want: []string{"Prices over 1 month", "March 2, 2024"},
		},
		{
			name: "year to date",
			cmd:  chartCmd{token: "YTD", date: "2024-03-31"},
			want: []string{"Prices over Year-to-Date", "Jan 2", "+$11.00"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := tt.cmd.report(cfg)
			if err != nil {
				t.Fatalf("report() unexpected error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(md, want) {
					t.Errorf("report() does not contain %q:\n%s", want, md)
				}
			}
		})
	}
}

func TestChartReport_FileFlags(t *testing.T) {
	cfg := config.NewDefaultConfig() // points to a prices.json that does not exist
	file := writeFile(t, "aapl.json", feed)
	c := chartCmd{token: "5d", date: "2024-03-31", file: file, path: "$.data"}
	if _, err := c.report(cfg); err != nil {
		t.Errorf("report() unexpected error = %v", err)
	}
}

func TestChartReport_Errors(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Prices = config.Source{File: writeFile(t, "prices.json", feed), Path: "$.data"}
	tests := []struct {
		name  string
		cmd   chartCmd
		usage bool
	}{
		{"unknown window", chartCmd{token: "2w", date: "0d"}, true},
		{"invalid date", chartCmd{token: "1m", date: "tomorrow"}, true},
		{"missing file", chartCmd{token: "1m", date: "0d", file: filepath.Join(t.TempDir(), "none.json")}, false},
		{"wrong path", chartCmd{token: "1m", date: "0d", path: "$.prices"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.report(cfg)
			if err == nil {
				t.Fatal("report() expected an error")
			}
			if got := errors.Is(err, errUsage); got != tt.usage {
				t.Errorf("report() error = %v, usage error = %v, want %v", err, got, tt.usage)
			}
		})
	}
}

func TestDividendsReport(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Dividends = config.Source{File: writeFile(t, "dividends.json", payments), Path: "$"}

	tests := []struct {
		name    string
		cmd     dividendsCmd
		want    []string
		notWant []string
	}{
		{
			name: "most recent year",
			cmd:  dividendsCmd{months: -1},
			want: []string{"Dividends 2024", "January ($150.00)", "$112.50", "$255.00", "Last 3 Months", "Nov 2023"},
		},
		{
			name: "older year",
			cmd:  dividendsCmd{year: 2023, months: -1},
			want: []string{"Dividends 2023", "November ($30.00)"},
		},
		{
			name:    "short series",
			cmd:     dividendsCmd{year: 2024, months: 1},
			want:    []string{"Last 1 Months", "Mar 2024"},
			notWant: []string{"Nov 2023"},
		},
		{
			name: "year without payment",
			cmd:  dividendsCmd{year: 2020, months: -1},
			want: []string{"Dividends 2020", "No dividend paid in 2020."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := tt.cmd.report(cfg)
			if err != nil {
				t.Fatalf("report() unexpected error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(md, want) {
					t.Errorf("report() does not contain %q:\n%s", want, md)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(md, notWant) {
					t.Errorf("report() should not contain %q:\n%s", notWant, md)
				}
			}
		})
	}
}

func TestDividendsReport_Errors(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Dividends = config.Source{File: writeFile(t, "dividends.json", `{"payments": []}`)}

	if _, err := (&dividendsCmd{year: -1}).report(cfg); !errors.Is(err, errUsage) {
		t.Errorf("report(-y -1) error = %v, want a usage error", err)
	}
	_, err := (&dividendsCmd{months: -1}).report(cfg)
	if err == nil || errors.Is(err, errUsage) {
		t.Errorf("report() error = %v, want a document error", err)
	}
}

func TestDividendsCalendar_SkipsInvalidRecords(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Dividends = config.Source{File: writeFile(t, "dividends.json", `[
	  {"symbol": "KO", "payment_date": "2024-01-15", "dividend_amount": 100, "currency": "usd"},
	  {"payment_date": "2024-01-20", "dividend_amount": 50},
	  {"symbol": "PG", "payment_date": "2024-03-01", "dividend_amount": -75}
	]`)}

	c, err := (&dividendsCmd{}).calendar(cfg)
	if err != nil {
		t.Fatalf("calendar() unexpected error = %v", err)
	}
	months := c.Months(2024)
	if len(months) != 2 || months[1].Currency != "USD" || !months[1].Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("calendar().Months(2024) = %+v, want January with only the KO payment in USD", months)
	}
}

func TestWindowsReport(t *testing.T) {
	md, err := (&windowsCmd{date: "2024-03-31"}).report()
	if err != nil {
		t.Fatalf("report() unexpected error = %v", err)
	}
	for _, want := range []string{"Chart Windows on March 31, 2024", "2024-03-02", "2019-03-31", "Year-to-Date"} {
		if !strings.Contains(md, want) {
			t.Errorf("report() does not contain %q:\n%s", want, md)
		}
	}
	if _, err := (&windowsCmd{date: "31/31/31"}).report(); !errors.Is(err, errUsage) {
		t.Errorf("report(invalid date) error = %v, want a usage error", err)
	}
}

func TestTopicReport(t *testing.T) {
	md, err := (&topicCmd{}).report(nil)
	if err != nil {
		t.Fatalf("report() unexpected error = %v", err)
	}
	if !strings.Contains(md, "fbd documentation") {
		t.Errorf("report() without topic should show the index:\n%s", md)
	}
	if _, err := (&topicCmd{}).report([]string{"windows", "nope"}); !errors.Is(err, errUsage) {
		t.Errorf("report(nope) error = %v, want a usage error", err)
	}
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		err  error
		want subcommands.ExitStatus
	}{
		{nil, subcommands.ExitSuccess},
		{errors.New("boom"), subcommands.ExitFailure},
		{usageError(errors.New("bad flag")), subcommands.ExitUsageError},
	}
	for _, tt := range tests {
		if got := exitStatus(tt.err); got != tt.want {
			t.Errorf("exitStatus(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, sub := range []string{"chart", "dividends", "windows", "topic"} {
		if _, ok := c.Sub[sub]; !ok {
			t.Errorf("Completion() has no %q sub command", sub)
		}
	}
	windows := c.Sub["chart"].Flags["w"].Predict("")
	if len(windows) != 8 {
		t.Errorf("chart -w predicts %v, want the 8 windows", windows)
	}
}

func TestChartWindow(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Prices = config.Source{File: writeFile(t, "prices.json", feed), Path: "$.data"}

	pw, err := (&chartCmd{token: "5d", date: "2024-03-31"}).window(cfg)
	if err != nil {
		t.Fatalf("window() unexpected error = %v", err)
	}
	if pw.Len() != 3 || len(pw.Unparsed) != 1 {
		t.Errorf("window() = %d points and %v unparsed, want 3 points and 1 unparsed", pw.Len(), pw.Unparsed)
	}
}

func TestDividendsCalendar(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Dividends = config.Source{File: writeFile(t, "dividends.json", payments), Path: "$"}

	c, err := (&dividendsCmd{}).calendar(cfg)
	if err != nil {
		t.Fatalf("calendar() unexpected error = %v", err)
	}
	years := c.Years()
	if len(years) != 2 || years[0] != 2024 || years[1] != 2023 {
		t.Errorf("calendar().Years() = %v, want [2024 2023]", years)
	}
}
