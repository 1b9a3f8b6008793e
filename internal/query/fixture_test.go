package query

import (
	"testing"
	"time"

	"github.com/livp123/logscope/internal/entry"
	"github.com/livp123/logscope/internal/store"
	"github.com/stretchr/testify/require"
)

var fixtureLines = []string{
	"127.0.0.1\tAmigo\t30.08.2012 16:08:13\tLOGIN\tOK",
	"127.0.0.1\tAmigo\t30.08.2012 16:08:40\tATTEMPT_TASK 18\tOK",
	"127.0.0.1\tAmigo\t31.08.2012 10:00:00\tATTEMPT_TASK 18\tFAILED",
	"192.168.100.2\tVasya Pupkin\t30.01.2014 12:56:22\tCOMPLETE_TASK 18\tERROR",
	"192.168.100.2\tVasya Pupkin\t29.2.2028 5:4:7\tATTEMPT_TASK 1\tOK",
	"146.34.15.5\tEduard\t13.09.2013 5:04:50\tDOWNLOAD_PLUGIN\tOK",
	"146.34.15.5\tEduard\t14.09.2013 5:04:50\tDOWNLOAD_PLUGIN\tFAILED",
	"12.12.12.12\tAnna\t03.01.2014 03:45:23\tSEND_MESSAGE\tFAILED",
	"12.12.12.12\tAnna\t99.99.2014 03:45:23\tLOGIN\tOK",
	"10.0.0.5\tSergey\t11.12.2013 10:11:12\tCOMPLETE_TASK 15\tOK",
	"10.0.0.5\tSergey\t12.12.2013 10:11:12\tATTEMPT_TASK 15\tOK",
	"10.0.0.5\tSergey\t12.12.2013 10:11:12\tATTEMPT_TASK 15\tOK",
}

func newFixtureEngine(t *testing.T) *Engine {
	t.Helper()
	p := entry.NewParser()
	b := store.NewBuilder()
	for _, line := range fixtureLines {
		e, err := p.Parse(line)
		require.NoError(t, err, line)
		b.Add(e)
	}
	return New(b.Build())
}

// ts parses a canonical "dd.mm.yyyy HH:MM:SS" time in UTC.
func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.ParseInLocation(entry.CanonicalLayout, s, time.UTC)
	require.NoError(t, err)
	return v
}

func year(t *testing.T, y string) TimeRange {
	t.Helper()
	return Between(ts(t, "01.01."+y+" 00:00:00"), ts(t, "31.12."+y+" 23:59:59"))
}
