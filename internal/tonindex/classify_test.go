package tonindex_test

import (
	"encoding/json"
	"tonwatch/internal/tonindex"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IsNativeTransfer", func() {
	var msg tonindex.RawMessage

	BeforeEach(func() {
		msg = tonindex.RawMessage{
			Source:      "EQSender",
			Destination: "EQWallet",
			Value:       json.Number("1000000000"),
			MsgData: tonindex.MsgData{
				Type: "msg.dataText",
				Text: "thanks",
			},
		}
	})

	It("accepts a plain value transfer", func() {
		native, rule := tonindex.IsNativeTransfer(msg)
		Expect(native).To(BeTrue())
		Expect(rule).To(BeEmpty())
	})

	DescribeTable("jetton operation codes",
		func(opCode string) {
			msg.MsgData.OpCode = opCode

			native, rule := tonindex.IsNativeTransfer(msg)
			Expect(native).To(BeFalse())
			Expect(rule).To(Equal("token opcode"))
		},
		Entry("jetton transfer, hex", "0x0f8a7ea5"),
		Entry("jetton internal transfer, hex", "0x178d4519"),
		Entry("jetton transfer notification, hex", "0x7362d09c"),
		Entry("jetton burn notification, hex", "0x595f07bc"),
		Entry("jetton transfer, decimal", "260734629"),
		Entry("jetton transfer, uppercase hex", "0X0F8A7EA5"),
	)

	It("accepts an unknown opcode", func() {
		msg.MsgData.OpCode = "0xdeadbeef"

		native, _ := tonindex.IsNativeTransfer(msg)
		Expect(native).To(BeTrue())
	})

	It("accepts an unparseable opcode", func() {
		msg.MsgData.OpCode = "not-an-opcode"

		native, _ := tonindex.IsNativeTransfer(msg)
		Expect(native).To(BeTrue())
	})

	DescribeTable("token keywords in the payload",
		func(text, body string) {
			msg.MsgData.Text = text
			msg.MsgData.Body = body

			native, rule := tonindex.IsNativeTransfer(msg)
			Expect(native).To(BeFalse())
			Expect(rule).To(Equal("token keyword"))
		},
		Entry("jetton in text", "Jetton payout", ""),
		Entry("token in body", "", "some token payload"),
		Entry("transfer_notification in body", "", "transfer_notification blob"),
	)

	It("rejects a message without carried value", func() {
		msg.Value = json.Number("0")

		native, rule := tonindex.IsNativeTransfer(msg)
		Expect(native).To(BeFalse())
		Expect(rule).To(Equal("no carried value"))
	})

	It("rejects a message with an empty value", func() {
		msg.Value = ""

		native, rule := tonindex.IsNativeTransfer(msg)
		Expect(native).To(BeFalse())
		Expect(rule).To(Equal("no carried value"))
	})

	It("reports the opcode rule before the keyword rule", func() {
		msg.MsgData.OpCode = "0x0f8a7ea5"
		msg.MsgData.Text = "jetton"

		_, rule := tonindex.IsNativeTransfer(msg)
		Expect(rule).To(Equal("token opcode"))
	})
})
