package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"ytscribe/config"
	"ytscribe/log"
	"ytscribe/pkg/youtube"
)

func main() {
	var (
		query      = flag.String("query", "", "search query (prompted for when omitted)")
		maxResults = flag.Int("n", 5, "number of results to return (max 50)")
		order      = flag.String("order", "", "result order: date, rating, relevance, title, viewCount")
		region     = flag.String("region", "", "ISO 3166-1 alpha-2 region code, e.g. JP")
		caption    = flag.String("caption", "", "caption filter: closedCaption, none, any")
		pageToken  = flag.String("page-token", "", "continuation token from a previous search")
		verbose    = flag.Bool("v", false, "print full descriptions instead of truncating")
	)
	flag.Parse()

	log.InitLogger()
	defer log.GetLogger().Sync()

	if _, err := config.LoadOrCreateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if config.Conf.Youtube.APIKey == "" {
		fmt.Fprintln(os.Stderr, "no YouTube API key configured: set youtube.api_key in config.toml or the YOUTUBE_API_KEY environment variable")
		os.Exit(1)
	}

	q := strings.TrimSpace(*query)
	if q == "" && flag.NArg() > 0 {
		q = strings.Join(flag.Args(), " ")
	}
	if q == "" {
		fmt.Print("Search query: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			q = strings.TrimSpace(scanner.Text())
		}
	}
	if q == "" {
		fmt.Fprintln(os.Stderr, "no search query given")
		os.Exit(1)
	}

	client := youtube.NewSearchClient(config.Conf.Youtube.APIKey, config.Conf.App.Proxy)

	videos, nextPageToken, err := client.Search(context.Background(), q, youtube.SearchParams{
		MaxResults:    *maxResults,
		Order:         *order,
		RegionCode:    *region,
		CaptionFilter: *caption,
		PageToken:     *pageToken,
	})
	if err != nil {
		log.GetLogger().Error("search failed", zap.String("query", q), zap.Error(err))
		fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		os.Exit(1)
	}

	if len(videos) == 0 {
		fmt.Println("No results.")
		return
	}

	fmt.Printf("Results for %q:\n\n", q)
	for i, v := range videos {
		fmt.Printf("%2d. %s\n", i+1, v.Title)
		fmt.Printf("    %s\n", v.VideoURL)
		fmt.Printf("    %s | %s\n", v.ChannelTitle, v.PublishedAt)
		if v.Description != "" {
			fmt.Printf("    %s\n", truncate(v.Description, *verbose))
		}
	}

	if nextPageToken != "" {
		fmt.Printf("\nNext page: rerun with -page-token %s\n", nextPageToken)
	}
}

func truncate(description string, full bool) string {
	const limit = 100
	runes := []rune(description)
	if full || len(runes) <= limit {
		return description
	}
	return string(runes[:limit]) + "..."
}
