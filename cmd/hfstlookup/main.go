// Command hfstlookup loads a compiled weighted transducer and prints the
// analyses for one query, or for every newline-delimited query on stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/golang/glog"
	"github.com/kho/easy"
	"github.com/kho/stream"

	"github.com/kotwys/hfstol"
)

func main() {
	var args struct {
		Model string `name:"model" usage:"compiled transducer file"`
	}
	query := flag.String("query", "", "single query to analyze; omit to read newline-delimited queries from stdin")
	maxAnalyses := flag.Int("max", 0, "maximum analyses per query, 0 for unbounded")
	cache := flag.Bool("cache", true, "memoize decoded output strings across queries")
	cpuprofile := flag.String("cpuprofile", "", "path to write CPU profile")
	memprofile := flag.String("memprofile", "", "path to write memory profile")
	easy.ParseFlagsAndArgs(&args)

	if *cpuprofile != "" {
		w := easy.MustCreate(*cpuprofile)
		pprof.StartCPUProfile(w)
		defer func() {
			pprof.StopCPUProfile()
			w.Close()
		}()
	}
	if *memprofile != "" {
		defer func() {
			w := easy.MustCreate(*memprofile)
			pprof.WriteHeapProfile(w)
			w.Close()
		}()
	}

	in, err := easy.Open(args.Model)
	if err != nil {
		glog.Fatal("error opening model: ", err)
	}
	data, err := ioutil.ReadAll(in)
	in.Close()
	if err != nil {
		glog.Fatal("error reading model: ", err)
	}

	var tr *hfstol.Transducer
	glog.Info("loading transducer took ", easy.Timed(func() {
		tr, err = hfstol.ReadTransducer(data)
	}))
	if err != nil {
		glog.Fatal("error loading transducer: ", err)
	}
	tr.SetMaxAnalyses(*maxAnalyses)

	var dc *decodeCache
	if *cache {
		dc = newDecodeCache(1024)
	}

	if *query != "" {
		printAnalyses(tr, dc, *query)
		return
	}

	it := lookupBatch{tr: tr, cache: dc}
	if err := stream.Run(stream.EnumRead(os.Stdin, bufio.ScanLines), it); err != nil {
		glog.Fatal("error reading queries: ", err)
	}
}

// lookupBatch is the iteratee driving batch mode: one query per line of
// stdin, printed as it is processed. It never halts on a bad individual
// query, only on an I/O failure from the enumerator itself.
type lookupBatch struct {
	tr    *hfstol.Transducer
	cache *decodeCache
}

func (it lookupBatch) Final() error { return nil }
func (it lookupBatch) Next(line []byte) (stream.Iteratee, bool, error) {
	q := strings.TrimSpace(string(line))
	if q != "" {
		printAnalyses(it.tr, it.cache, q)
	}
	return it, true, nil
}

func printAnalyses(tr *hfstol.Transducer, cache *decodeCache, query string) {
	symbols, err := tr.Tokenize(query)
	if err != nil {
		glog.Warningf("%s: %v", query, err)
		return
	}
	encoded, err := tr.LookupEncoded(symbols)
	if err != nil {
		glog.Warningf("%s: %v", query, err)
		return
	}
	if len(encoded) == 0 {
		fmt.Printf("%s\t+?\n", query)
		return
	}
	for _, e := range encoded {
		output, err := decodeCached(tr, cache, e.Symbols)
		if err != nil {
			glog.Warningf("%s: %v", query, err)
			continue
		}
		fmt.Printf("%s\t%s\t%g\n", query, output, e.Weight)
	}
}

// decodeCached decodes symbols through tr.Decode, consulting cache first
// when one is configured.
func decodeCached(tr *hfstol.Transducer, cache *decodeCache, symbols []hfstol.Symbol) (string, error) {
	if cache == nil {
		return tr.Decode(symbols)
	}
	key := encodeSymbols(symbols)
	if v, ok := cache.Get(key); ok {
		return v, nil
	}
	v, err := tr.Decode(symbols)
	if err != nil {
		return "", err
	}
	cache.Put(key, v)
	return v, nil
}

// encodeSymbols serializes a symbol sequence into a cache key, two bytes
// per symbol, little-endian.
func encodeSymbols(symbols []hfstol.Symbol) string {
	var b strings.Builder
	b.Grow(len(symbols) * 2)
	for _, s := range symbols {
		b.WriteByte(byte(s))
		b.WriteByte(byte(s >> 8))
	}
	return b.String()
}
