package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wordring/gowordring/internal/metrics"
	"github.com/wordring/gowordring/trie"
)

// newTrieCmd exposes the double-array trie engine directly, independent
// of HTML parsing: build a trie from a newline-delimited word list,
// report its longest-prefix match against a lookup key, and round-trip it
// through the heap-only serialization format.
func newTrieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trie",
		Short: "Build and inspect a double-array trie from a word list",
	}

	cmd.AddCommand(newTrieLookupCmd())
	cmd.AddCommand(newTrieRoundtripCmd())

	return cmd
}

func newTrieLookupCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "lookup <words-file> <key>",
		Short: "Insert every line of words-file and report the longest prefix of key that matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _, err := buildTrieFromFile(args[0], compact)
			if err != nil {
				return err
			}
			metrics.ObserveTrieHeapSize(t.HeapLen())

			key := args[1]
			it, consumed := t.Lookup([]byte(key))
			metrics.ObserveTrieOp("lookup")
			if consumed == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no match (heap nodes: %d)\n", t.HeapLen())
				return nil
			}
			complete := it.HasNull() && consumed == len(key)
			fmt.Fprintf(cmd.OutOrStdout(), "matched %d of %d bytes (%q), exact entry: %v, heap nodes: %d\n",
				consumed, len(key), key[:consumed], complete, t.HeapLen())
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "use the Compact mutation discipline instead of Stable")

	return cmd
}

func newTrieRoundtripCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "roundtrip <words-file>",
		Short: "Build a trie, serialize it, deserialize it back, and report the heap size before and after",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, count, err := buildTrieFromFile(args[0], compact)
			if err != nil {
				return err
			}

			pr, pw := io.Pipe()
			errCh := make(chan error, 1)
			go func() {
				defer pw.Close()
				errCh <- t.Serialize(pw)
			}()

			loaded := trie.New(trie.Stable)
			if err := loaded.Deserialize(pr); err != nil {
				return fmt.Errorf("deserialize: %w", err)
			}
			if err := <-errCh; err != nil {
				return fmt.Errorf("serialize: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d keys, heap nodes before: %d, after round trip: %d\n",
				count, t.HeapLen(), loaded.HeapLen())
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "use the Compact mutation discipline instead of Stable")

	return cmd
}

func buildTrieFromFile(path string, compact bool) (*trie.Trie, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	discipline := trie.Stable
	if compact {
		discipline = trie.Compact
	}
	t := trie.New(discipline)

	var count int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		if err := t.Insert([]byte(word), uint32(count)); err != nil {
			return nil, 0, fmt.Errorf("insert %q: %w", word, err)
		}
		metrics.ObserveTrieOp("insert")
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return t, count, nil
}
