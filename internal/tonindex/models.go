package tonindex

import "encoding/json"

// toncenter /api/v2 wire shapes. Only the fields this service reads are
// declared; providers differ on where text/body/opcode live, so MsgData
// carries all the known key paths.

type transactionsResponse struct {
	OK     bool             `json:"ok"`
	Error  string           `json:"error"`
	Result []RawTransaction `json:"result"`
}

type accountInfoResponse struct {
	OK     bool        `json:"ok"`
	Error  string      `json:"error"`
	Result AccountInfo `json:"result"`
}

type RawTransaction struct {
	TransactionID TransactionID `json:"transaction_id"`
	Utime         int64         `json:"utime"`
	InMsg         *RawMessage   `json:"in_msg"`
	OutMsgs       []RawMessage  `json:"out_msgs"`
}

type TransactionID struct {
	Hash string `json:"hash"`
	LT   string `json:"lt"`
}

type RawMessage struct {
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	Value       json.Number `json:"value"`
	MsgData     MsgData     `json:"msg_data"`
}

type MsgData struct {
	Type   string `json:"@type"`
	Text   string `json:"text"`
	Body   string `json:"body"`
	OpCode string `json:"op_code"`
}

type AccountInfo struct {
	Balance json.Number `json:"balance"`
	State   string      `json:"state"`
}

// Transfer is the canonical record normalized out of a raw transaction.
type Transfer struct {
	Hash          string
	AccountID     string
	SenderAddress string // empty when unknown
	AmountNano    int64
	Message       string
	Timestamp     int64
	LogicalTime   *int64
	Confirmed     bool
}
