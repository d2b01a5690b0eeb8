// Package main provides localization for the framereel CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":             "入力",
		"Output":            "出力",
		"Video and Quality": "動画と品質",
		"Configuration":     "設定ファイル",
		"Debug":             "デバッグ",
		"Logging":           "ログ",

		// Root command
		"Assemble image frames into a video": "画像フレームを動画に結合",
		"framereel reads still-image frames from a directory, orders them by file name and encodes them into a video at a fixed frame rate.": "framereelはディレクトリ内の静止画フレームをファイル名順に並べ、固定フレームレートで動画にエンコードします。",

		// Input flags
		"Directory containing the frame images":       "フレーム画像を含むディレクトリ",
		"Frame file extension, repeatable (case-sensitive)": "フレームファイルの拡張子、複数指定可（大文字小文字を区別）",

		// Output flags
		"Output video file path":                                     "出力動画ファイルのパス",
		"Overwrite the output file without asking":                   "確認せずに出力ファイルを上書き",
		"Read the output back and check frame count and frame rate": "出力を読み戻してフレーム数とフレームレートを検証",

		// Video flags
		"Frames per second":                          "1秒あたりのフレーム数",
		"Quality preset (low, medium, high)":         "品質プリセット（low, medium, high）",
		"Writer backend (auto, mjpeg, ffmpeg, gocv)": "書き込みバックエンド（auto, mjpeg, ffmpeg, gocv）",
		"Frames with a different size: resize, fit, skip or fail": "サイズの異なるフレームの扱い: resize, fit, skip, fail",
		"Path to ffmpeg executable":                  "ffmpeg実行ファイルのパス",

		// Configuration flags
		"YAML configuration file": "YAML設定ファイル",
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",

		// Debug flags
		"Save every written frame and a manifest for inspection": "書き込んだ全フレームとマニフェストを保存",
		"Directory for debug output":                             "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Summary saved to %s":          "サマリーを %s に保存しました",
		"Error: %s":                    "エラー: %s",
		"Expected at most one FRAMES_DIR argument, got %d": "FRAMES_DIR引数は1つまでです（%d 個指定されました）",

		// Summary content
		"Frame Assembly Summary": "フレーム結合サマリー",
		"Item":                   "項目",
		"Value":                  "値",
		"Frame Directory":        "フレームディレクトリ",
		"Extensions":             "拡張子",
		"Frames Found":           "検出フレーム数",
		"Naming":                 "ファイル名",
		"Not zero-padded":        "ゼロ埋めされていません",
		"Video File":             "動画ファイル",
		"Codec":                  "コーデック",
		"Backend":                "バックエンド",
		"Dimensions":             "サイズ",
		"Frame Rate":             "フレームレート",
		"Frames Written":         "書き込みフレーム数",
		"Duration":               "再生時間",
		"File Size":              "ファイルサイズ",
		"Quality":                "品質",
		"Dimension Policy":       "サイズ不一致の扱い",
		"Skipped Frames":         "スキップしたフレーム",
		"File":                   "ファイル",
		"Reason":                 "理由",
		"None":                   "なし",
		"Verification":           "検証",
		"Container":              "コンテナ",
		"Frames in File":         "ファイル内フレーム数",
		"Frame Rate in File":     "ファイル内フレームレート",
		"Dimensions in File":     "ファイル内サイズ",
		"Generated at":           "生成日時",
	})
}
