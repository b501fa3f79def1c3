/*
Package autoflush drives an awrite.Buffer from background flush triggers.

A Flusher takes exclusive ownership of the Buffer and serializes all access,
so multiple goroutines can write through it. Staged bytes are flushed when a
write would overflow the scratch region, on a fixed interval, on a cron
schedule, on demand, and once more on Close.

	buf := awrite.NewSize(4096, sinks.Writer(logFile))
	f, err := autoflush.New(buf, autoflush.Config{
		FlushInterval: 500 * time.Millisecond,
		Schedule:      "@hourly",
	})
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	f.WriteString("ready\n")
*/
package autoflush
