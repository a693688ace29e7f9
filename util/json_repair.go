package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// repairMessageDump reads a message dump which failed to decode with a
// syntax error. Dumps saved by Windows editors start with a UTF-8 BOM;
// other damage, such as a lost closing brace, is left to gjson.
func repairMessageDump(data []byte, parseErr error) (*MessageDump, error) {
	log.Warnf("fall back to repair the message dump: %v", parseErr)

	data = bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	var dump MessageDump
	err := json.Unmarshal(data, &dump)
	if err == nil {
		return &dump, nil
	}
	if _, ok := err.(*json.SyntaxError); !ok {
		return nil, fmt.Errorf("decode message dump: %w", err)
	}

	messages := gjson.GetBytes(data, "messages")
	if !messages.IsArray() {
		return nil, fmt.Errorf("decode message dump: no messages array: %w", err)
	}
	dump.SourceFile = gjson.GetBytes(data, "source_file").String()
	dump.Messages = nil

	var badErr error
	messages.ForEach(func(_, m gjson.Result) bool {
		hash, unk := m.Get("hash"), m.Get("unk")
		if !hash.Exists() || hash.Uint() > math.MaxUint32 || unk.Uint() > math.MaxUint32 {
			badErr = fmt.Errorf("decode message dump: bad message %s", m.Raw)
			return false
		}
		dump.Messages = append(dump.Messages, DumpedMessage{
			Hash: uint32(hash.Uint()),
			Unk:  uint32(unk.Uint()),
			Text: m.Get("text").String(),
		})
		return true
	})
	if badErr != nil {
		return nil, badErr
	}
	return &dump, nil
}
