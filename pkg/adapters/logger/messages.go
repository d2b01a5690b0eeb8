package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Assembling frames from %s":         "%s からフレームを組み立てています",
		"Found %d frames":                   "%d フレームを検出しました",
		"Video generated: %s":               "動画を生成しました: %s",
		"Interrupted, shutting down...":     "中断されました。シャットダウン中...",
		"Overwriting existing output %s":    "既存の出力 %s を上書きします",
		"%d of %d frames were skipped":      "%d / %d フレームをスキップしました",
		"%s already exists. Overwrite?":     "%s は既に存在します。上書きしますか?",
		"Using %s backend (%s)":             "%s バックエンド (%s) を使用します",
		"ffmpeg not found, falling back to %s": "ffmpeg が見つからないため %s にフォールバックします",

		// Scan stage
		"Scanning %s for %s":                "%s 内の %s を検索中",
		"Frame names are not zero-padded consistently; lexicographic order may not match frame order": "フレーム名のゼロ埋めが一定ではありません。辞書順がフレーム順と一致しない可能性があります",

		// Encode stage
		"Opened %s writer (%s) %dx%d at %d fps": "%s ライター (%s) を %dx%d, %d fps で開きました",
		"Wrote frame %d: %s":                "フレーム %d を書き込みました: %s",
		"Resized frame %s from %dx%d":       "フレーム %s を %dx%d からリサイズしました",
		"Encoded %d frames in %s":           "%d フレームを %s にエンコードしました",

		// Probe
		"Probed %s: %d frames, %dx%d, %.2f fps": "%s を検査: %d フレーム, %dx%d, %.2f fps",
		"Output has %d frames but %d were written": "出力は %d フレームですが %d フレームを書き込みました",
		"Output frame rate %.3f differs from requested %d": "出力フレームレート %.3f が指定値 %d と異なります",
		"Output is %dx%d but frames are %dx%d": "出力は %dx%d ですがフレームは %dx%d です",
		"Could not probe output: %s":        "出力を検査できませんでした: %s",

		// Warnings
		"Failed to read frame %s: %s":       "フレームの読み込みに失敗しました %s: %s",
		"Skipping frame %s: %s":             "フレームをスキップします %s: %s",
		"Failed to save debug frame %d: %s": "デバッグフレーム %d の保存に失敗しました: %s",
		"Failed to write summary: %s":       "サマリーの書き込みに失敗しました: %s",

		// Errors
		"Failed to assemble video: %s":      "動画の組み立てに失敗しました: %s",
	})
}
