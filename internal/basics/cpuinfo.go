package basics

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// WorkerCount returns how many row-workers a parallel filter pass should
// use: GOMAXPROCS (at least 1), and on an x86 host that reports AVX2
// support a quarter more. We allow a few more
// goroutines than bare GOMAXPROCS, since each row worker here is cheap and
// memory-bound rather than compute-bound.
func WorkerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	if cpu.X86.HasAVX2 {
		n += n / 4
	}
	return n
}
