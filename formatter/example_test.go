package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
)

func ExampleAppendPrefix() {
	clock := core.FixedClock(time.Date(2026, 1, 15, 12, 0, 0, 250*int(time.Millisecond), time.UTC))

	var buf formatter.Buffer
	full := formatter.AppendPrefix(buf[:0], formatter.DefaultFlags, clock, core.InfoLevel)
	fmt.Printf("%q\n", full)

	levelOnly := formatter.AppendPrefix(nil, formatter.Flags{Prefix: true, LevelName: true}, clock, core.ErrorLevel)
	fmt.Printf("%q\n", levelOnly)
	// Output:
	// "[12:00:00.250 INFO] "
	// "[ERROR] "
}
