package tonindex

import (
	"strconv"
	"strings"
)

// Best-effort native-vs-jetton classification. There is no contract-code
// inspection here: a memo that happens to contain a token keyword drops a
// legitimate transfer, and an unknown jetton opcode slips through. Both
// are accepted trade-offs.

// jetton-standard operation codes
var tokenOpcodes = map[uint64]string{
	0x0f8a7ea5: "jetton transfer",
	0x178d4519: "jetton internal transfer",
	0x7362d09c: "jetton transfer notification",
	0x595f07bc: "jetton burn notification",
}

var tokenKeywords = []string{"jetton", "token", "transfer_notification"}

type classifierRule struct {
	Name    string
	Rejects func(msg RawMessage) bool
}

// Rules are checked in order; the first rejecting rule wins and the
// default verdict is accept.
var nativeTransferRules = []classifierRule{
	{Name: "token opcode", Rejects: hasTokenOpcode},
	{Name: "token keyword", Rejects: hasTokenKeyword},
	{Name: "no carried value", Rejects: hasNoCarriedValue},
}

// IsNativeTransfer reports whether msg looks like a plain TON value
// transfer. When it does not, the name of the rejecting rule is returned.
func IsNativeTransfer(msg RawMessage) (bool, string) {
	for _, rule := range nativeTransferRules {
		if rule.Rejects(msg) {
			return false, rule.Name
		}
	}
	return true, ""
}

func hasTokenOpcode(msg RawMessage) bool {
	op := strings.TrimSpace(msg.MsgData.OpCode)
	if op == "" {
		return false
	}

	// opcodes arrive either hex ("0x0f8a7ea5") or decimal
	code, err := strconv.ParseUint(strings.ToLower(op), 0, 64)
	if err != nil {
		return false
	}

	_, ok := tokenOpcodes[code]
	return ok
}

func hasTokenKeyword(msg RawMessage) bool {
	body := strings.ToLower(msg.MsgData.Body + " " + msg.MsgData.Text)
	for _, keyword := range tokenKeywords {
		if strings.Contains(body, keyword) {
			return true
		}
	}
	return false
}

func hasNoCarriedValue(msg RawMessage) bool {
	return nanoValue(msg.Value) <= 0
}
