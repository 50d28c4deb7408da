package mdmend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riverfjs/mdmend-go/internal/parser"
	"github.com/riverfjs/mdmend-go/internal/util"
)

// ErrInvalidArgument 调用方违反了参数契约
var ErrInvalidArgument = errors.New("mdmend: invalid argument")

// ProcessMessage 完整管道：修复 → 提取超长代码块 → 拆分
//
// 步骤：
// 1. Mend 修复代码围栏与数学定界符
// 2. 遍历修复后文本中的代码块，超过 ExtractThreshold 行的提取为 CodeFile
// 3. 剩余文本按 maxMessageLength 拆分为 Text
//
// 参数：
//   - text: 原始文本
//   - maxMessageLength: 单条文本块的最大 rune 数，0 取配置默认值，
//     负数返回 ErrInvalidArgument
//   - config: 配置，nil 使用默认配置
//
// 返回：
//   - []Content: Text 与 CodeFile 的有序列表
//   - error: 参数非法时的错误；畸形文本永远不是错误
func ProcessMessage(text string, maxMessageLength int, config *Config) ([]Content, error) {
	if maxMessageLength < 0 {
		return nil, fmt.Errorf("%w: maxMessageLength %d", ErrInvalidArgument, maxMessageLength)
	}
	if config == nil {
		config = DefaultConfig()
	}
	if maxMessageLength == 0 {
		maxMessageLength = config.MaxMessageLength
	}
	if maxMessageLength <= 0 {
		maxMessageLength = 4096
	}
	threshold := config.ExtractThreshold
	if threshold <= 0 {
		threshold = 50
	}

	mended, _ := Mend(text, WithConfig(config))

	result := make([]Content, 0)
	cursor := 0
	for _, seg := range parser.CodeSegments(mended) {
		lineCount := strings.Count(seg.Code, "\n") + 1
		if lineCount <= threshold {
			// 小代码块保留在文本中
			continue
		}
		if seg.Start > cursor {
			appendTextChunks(&result, mended[cursor:seg.Start], maxMessageLength)
		}
		appendCodeFile(&result, seg)
		cursor = seg.End
	}
	if cursor < len(mended) {
		appendTextChunks(&result, mended[cursor:], maxMessageLength)
	}

	if len(result) == 0 && strings.TrimSpace(mended) != "" {
		appendTextChunks(&result, strings.TrimSpace(mended), maxMessageLength)
	}
	return result, nil
}

// appendTextChunks 拆分文本并追加 Text 对象，空白块丢弃
func appendTextChunks(result *[]Content, text string, maxMessageLength int) {
	for _, chunk := range SplitText(text, maxMessageLength) {
		chunk = strings.Trim(chunk, "\n")
		if chunk == "" {
			continue
		}
		*result = append(*result, &Text{
			Text: chunk,
			ContentTrace: ContentTrace{
				SourceType: "text",
			},
		})
	}
}

// appendCodeFile 把超长代码块封装为 CodeFile
func appendCodeFile(result *[]Content, seg parser.Segment) {
	lang := seg.Language
	if lang == "" {
		lang = "plaintext"
	}
	fileName := util.FileName(seg.Code, lang)

	*result = append(*result, &CodeFile{
		FileName: fileName,
		FileData: []byte(seg.Code),
		ContentTrace: ContentTrace{
			SourceType: "file",
			Extra: map[string]interface{}{
				"language": lang,
			},
		},
	})
}
