package tonindex

import (
	"encoding/json"
	"strconv"
)

// Normalize maps a raw transaction onto the canonical Transfer. The
// incoming message is the source of truth for sender and amount; when
// only outgoing messages exist the transfer is self-originated and the
// sender is synthesized as the monitored account. Reports false when the
// payload carries nothing actionable.
func Normalize(raw RawTransaction, accountID string) (Transfer, bool) {
	transfer := Transfer{
		Hash:      raw.TransactionID.Hash,
		AccountID: accountID,
		Timestamp: raw.Utime,
		Confirmed: true,
	}

	if raw.TransactionID.LT != "" {
		if lt, err := strconv.ParseInt(raw.TransactionID.LT, 10, 64); err == nil {
			transfer.LogicalTime = &lt
		}
	}

	switch {
	case raw.InMsg != nil && raw.InMsg.Source != "":
		transfer.SenderAddress = raw.InMsg.Source
		transfer.AmountNano = nanoValue(raw.InMsg.Value)
		transfer.Message = messageText(raw.InMsg.MsgData)
	case len(raw.OutMsgs) > 0:
		out := raw.OutMsgs[0]
		transfer.SenderAddress = accountID
		transfer.AmountNano = nanoValue(out.Value)
		transfer.Message = messageText(out.MsgData)
	}

	if transfer.Hash == "" {
		return Transfer{}, false
	}
	if transfer.SenderAddress == "" && transfer.AmountNano == 0 {
		return Transfer{}, false
	}

	return transfer, true
}

func nanoValue(value json.Number) int64 {
	if value == "" {
		return 0
	}
	nano, err := value.Int64()
	if err != nil {
		return 0
	}
	return nano
}

func messageText(data MsgData) string {
	if data.Text != "" {
		return data.Text
	}
	return data.Body
}
