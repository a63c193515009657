package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"
)

var (
	backendEndpoint = "http://localhost:8080/generate"
	defaultWidth    = 800
	defaultHeight   = 600
	borderColor     = "#ff0000"
	repeats         = 3

	formats = []string{"png", "jpg", "pdf", "xlsx"}
	counts  = []int{1, 10, 50}
)

func main() {
	ctx := context.Background()

	var results []BenchResult
	for _, format := range formats {
		for _, count := range counts {
			for range repeats {
				res := benchmarkCase(ctx, Case{Format: format, Count: count})

				if res.Err != nil {
					log.Println("ERR:", res.Err)
				} else {
					log.Printf("OK %s x%d %v", res.Format, res.Count, res.Duration)
				}

				results = append(results, res)
			}
		}
	}

	printMarkdown(results)
}

func benchmarkCase(ctx context.Context, c Case) BenchResult {
	start := time.Now()

	req := GenerateRequest{
		Format:      c.Format,
		Count:       c.Count,
		Width:       defaultWidth,
		Height:      defaultHeight,
		BgColor:     "#ffffff",
		TextColor:   "#000000",
		BorderColor: &borderColor,
	}

	contentType, size, err := sendGenerate(ctx, req)

	return BenchResult{
		Format:      c.Format,
		Count:       c.Count,
		Duration:    time.Since(start),
		ContentType: contentType,
		Err:         err,
		Size:        size,
	}
}

func sendGenerate(ctx context.Context, req GenerateRequest) (string, int64, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", 0, fmt.Errorf("marshal req: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, backendEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("bad status %d: %s",
			resp.StatusCode,
			strings.TrimSpace(string(b)),
		)
	}

	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return "", 0, err
	}

	contentType := resp.Header.Get("Content-Type")
	if req.Count > 1 && contentType != "application/zip" {
		return contentType, n, fmt.Errorf("expected zip archive for count %d, got %s", req.Count, contentType)
	}
	return contentType, n, nil
}

func aggregate(results []BenchResult) map[Case]Agg {
	m := map[Case]Agg{}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		key := Case{Format: r.Format, Count: r.Count}
		a := m[key]
		a.Requests++
		a.Files += r.Count
		a.TotalBytes += r.Size
		a.Total += r.Duration
		m[key] = a
	}
	return m
}

func printMarkdown(results []BenchResult) {
	fmt.Println("\n## Benchmark Results\n")
	fmt.Println("| Format | Count | Requests | Avg Time | Avg Time / File | Avg Response Size |")
	fmt.Println("|--------|-------|----------|----------|-----------------|-------------------|")

	agg := aggregate(results)

	keys := make([]Case, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Format != keys[j].Format {
			return keys[i].Format < keys[j].Format
		}
		return keys[i].Count < keys[j].Count
	})

	var (
		totalFiles    int
		totalDuration time.Duration
	)

	for _, k := range keys {
		a := agg[k]
		avg := a.Total / time.Duration(a.Requests)
		perFile := a.Total / time.Duration(a.Files)
		avgSize := a.TotalBytes / int64(a.Requests)
		fmt.Printf("| %s | %d | %d | %v | %v | %s |\n",
			k.Format,
			k.Count,
			a.Requests,
			avg.Round(time.Millisecond),
			perFile.Round(time.Microsecond),
			humanBytes(avgSize),
		)
		totalFiles += a.Files
		totalDuration += a.Total
	}

	if totalFiles > 0 {
		fmt.Printf("| **ALL** | %d | - | %v | %v | - |\n",
			totalFiles,
			totalDuration.Round(time.Millisecond),
			(totalDuration / time.Duration(totalFiles)).Round(time.Microsecond),
		)
	}
}

func humanBytes(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/GB)
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/MB)
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/KB)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
