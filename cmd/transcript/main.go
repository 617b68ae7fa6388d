package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"ytscribe/config"
	"ytscribe/internal/export"
	"ytscribe/log"
	apperrors "ytscribe/pkg/errors"
	"ytscribe/pkg/segment"
	"ytscribe/pkg/youtube"
)

func main() {
	var (
		language   = flag.String("language", "ja", "caption track language code")
		translate  = flag.Bool("translate", false, "fall back to server-side translation when the track is missing")
		output     = flag.String("output", "", "write JSON to this path plus a .txt sibling instead of stdout")
		timestamps = flag.Bool("timestamps", false, "prefix each line with [HH:MM:SS]")
		segmentLen = flag.Int("segment", 0, "bucket cues into segments of this many seconds (0 disables)")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <YouTube URL or video ID>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.InitLogger()
	defer log.GetLogger().Sync()

	if _, err := config.LoadOrCreateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	videoID, err := youtube.ExtractVideoID(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "not a YouTube URL or video id: %s\n", flag.Arg(0))
		os.Exit(1)
	}

	withTimestamps := *timestamps
	if *segmentLen > 0 && !withTimestamps {
		// Segments without their start times are just a flat wall of text.
		fmt.Fprintln(os.Stderr, "note: -segment implies -timestamps")
		withTimestamps = true
	}

	client := youtube.NewCaptionClient(config.Conf.App.Proxy)

	cues, err := client.GetTranscript(context.Background(), videoID, *language, *translate)
	if err != nil {
		log.GetLogger().Error("transcript fetch failed",
			zap.String("videoId", videoID), zap.String("language", *language), zap.Error(err))
		reportCaptionError(err, *language, *translate)
		os.Exit(1)
	}

	var (
		text    string
		payload any
	)
	if *segmentLen > 0 {
		segments, err := segment.BuildSegments(cues, *segmentLen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		text = segment.Render(segments, withTimestamps)
		payload = segments
	} else {
		text = segment.Render(cues, withTimestamps)
		payload = cues
	}

	if *output != "" {
		if err := export.WriteJSON(*output, payload); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		textPath := export.TextSibling(*output)
		if err := export.WriteText(textPath, text); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s and %s\n", *output, textPath)
		return
	}

	fmt.Printf("Transcript for video %s:\n%s\n", videoID, text)
}

func reportCaptionError(err error, language string, translate bool) {
	switch {
	case apperrors.Is(err, apperrors.CodeCaptionsDisabled):
		fmt.Fprintln(os.Stderr, "captions are disabled for this video")
	case apperrors.Is(err, apperrors.CodeCaptionNotFound):
		fmt.Fprintf(os.Stderr, "no %q caption track found", language)
		if !translate {
			fmt.Fprint(os.Stderr, "; retry with -translate to use a translated track")
		}
		fmt.Fprintln(os.Stderr)
	default:
		fmt.Fprintf(os.Stderr, "failed to fetch transcript: %v\n", err)
	}
}
