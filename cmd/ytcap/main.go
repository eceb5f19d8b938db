package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"ytcap/internal/youtube"
)

func main() {
	var (
		url        = flag.String("url", "", "YouTube video URL or video ID")
		langs      = flag.String("langs", "ko,en", "Comma-separated language codes in preference order")
		format     = flag.String("format", "text", "Output format: text, json, srt, vtt")
		outputFile = flag.String("o", "", "Output file (default: stdout)")
		showInfo   = flag.Bool("info", false, "Show video info only")
		listLangs  = flag.Bool("list", false, "List available caption tracks")
		preserve   = flag.Bool("preserve", false, "Preserve inline formatting markup in caption text")
		verbose    = flag.Bool("v", false, "Verbose output")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -url https://www.youtube.com/watch?v=xxx\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -url xxx -langs en,ja -format json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -url https://youtu.be/xxx -format srt -o output.srt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -url xxx -list\n", os.Args[0])
	}

	flag.Parse()

	if *url == "" {
		fmt.Fprintf(os.Stderr, "Error: YouTube URL or video ID is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"text": true, "json": true, "srt": true, "vtt": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: Invalid format '%s'. Must be: text, json, srt, or vtt\n", *format)
		os.Exit(1)
	}

	ctx := context.Background()
	client := youtube.NewClient()
	videoID := youtube.ExtractVideoID(*url)

	if *verbose {
		fmt.Fprintf(os.Stderr, "Fetching video: %s\n", videoID)
	}

	if *showInfo || *listLangs {
		video, err := client.GetVideo(ctx, videoID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to get video: %v\n", err)
			os.Exit(1)
		}
		printVideoInfo(video)
		if *listLangs {
			printCaptionList(video)
		}
		return
	}

	languages := splitLanguages(*langs)

	if *verbose {
		fmt.Fprintf(os.Stderr, "Fetching captions (languages: %s)...\n", strings.Join(languages, ", "))
	}

	result, err := client.Fetch(ctx, videoID, languages, *preserve)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to fetch captions: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "Fetched %d caption entries (language: %s)\n", len(result.Entries), result.LanguageCode)
	}

	var output string
	switch *format {
	case "json":
		output, err = result.FormatAsJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to format JSON: %v\n", err)
			os.Exit(1)
		}
	case "srt":
		output = result.FormatAsSRT()
	case "vtt":
		output = result.FormatAsVTT()
	default:
		output = result.FormatAsText()
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to write output file: %v\n", err)
			os.Exit(1)
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "Output written to: %s\n", *outputFile)
		}
	} else {
		fmt.Println(output)
	}
}

func printVideoInfo(video *youtube.VideoInfo) {
	fmt.Println("=== Video Info ===")
	fmt.Printf("Title:    %s\n", video.Title)
	fmt.Printf("Author:   %s\n", video.Author)
	fmt.Printf("Duration: %s\n", video.Duration)
	fmt.Printf("ID:       %s\n", video.ID)
}

func printCaptionList(video *youtube.VideoInfo) {
	fmt.Println("\n=== Available Captions ===")
	if len(video.Captions) == 0 {
		fmt.Println("No captions available")
		return
	}
	for i, caption := range video.Captions {
		kind := "manual"
		if caption.IsGenerated() {
			kind = "auto"
		}
		fmt.Printf("%d. %s (%s, %s)\n", i+1, caption.LanguageCode, caption.Name, kind)
	}
}

func splitLanguages(s string) []string {
	parts := strings.Split(s, ",")
	langs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			langs = append(langs, p)
		}
	}
	return langs
}
