package encode_utils

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8     = "UTF-8"
	EncodingUTF8BOM  = "UTF-8-BOM"
	EncodingGBK      = "GBK"
	EncodingGB18030  = "GB18030"
	EncodingHZGB2312 = "HZ-GB2312"
)

// NewEncoder 创建编码器 不支持的编码返回 nil
func NewEncoder(encodingStr string) *encoding.Encoder {
	switch encodingStr {
	case EncodingUTF8:
		return unicode.UTF8.NewEncoder()
	case EncodingUTF8BOM:
		return unicode.UTF8BOM.NewEncoder()
	case EncodingGBK:
		return simplifiedchinese.GBK.NewEncoder()
	case EncodingGB18030:
		return simplifiedchinese.GB18030.NewEncoder()
	case EncodingHZGB2312:
		return simplifiedchinese.HZGB2312.NewEncoder()
	default:
		return nil
	}
}

// NewWriter 包装 w 写入时把 UTF-8 文本转换为目标编码
// 调用方需要 Close 返回的 WriteCloser 以刷新缓冲
func NewWriter(w io.Writer, encodingStr string) (io.WriteCloser, error) {
	encoder := NewEncoder(encodingStr)
	if encoder == nil {
		return nil, fmt.Errorf("unsupported encoding %q", encodingStr)
	}
	return transform.NewWriter(w, encoder), nil
}
