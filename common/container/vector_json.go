package container

import (
	"bytes"

	"github.com/goccy/go-json"
)

// MarshalJSON 编码已构造的元素为 JSON 数组
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.size == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.storage[:v.size])
}

// UnmarshalJSON 解码 JSON 数组并替换当前内容 容量等于元素个数
// 解码或构造失败时 Vector 保持原样; null 不做任何事
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var decoded []T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var block []T
	if len(decoded) > 0 {
		var err error
		if block, err = v.allocate(len(decoded)); err != nil {
			return err
		}
		if err = v.copyInto("UnmarshalJSON", block, decoded); err != nil {
			return err
		}
	}
	v.Release()
	v.storage = block
	v.size = len(decoded)
	return nil
}
