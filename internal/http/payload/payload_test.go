package payload_test

import (
	"net/http/httptest"
	"strings"

	"tonwatch/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	decode := func(body string, target any) error {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		return decoder.DecodeJSONPayload(req, target)
	}

	Describe("AuthRequest", func() {
		It("decodes a valid payload", func() {
			var auth payload.AuthRequest
			err := decode(`{"username":"admin","password":"secret"}`, &auth)
			Expect(err).NotTo(HaveOccurred())
			Expect(auth.ToMessage().Username).To(Equal("admin"))
		})

		It("rejects a missing password", func() {
			var auth payload.AuthRequest
			err := decode(`{"username":"admin"}`, &auth)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})

		It("rejects unknown fields", func() {
			var auth payload.AuthRequest
			err := decode(`{"username":"admin","password":"secret","extra":1}`, &auth)
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})
	})

	Describe("SyncRequest", func() {
		It("rejects a limit over the maximum", func() {
			var sync payload.SyncRequest
			err := decode(`{"limit":500}`, &sync)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})

		It("defaults an omitted limit", func() {
			var sync payload.SyncRequest
			err := decode(`{}`, &sync)
			Expect(err).NotTo(HaveOccurred())
			Expect(sync.EffectiveLimit()).To(Equal(10))
		})

		It("keeps an explicit limit", func() {
			var sync payload.SyncRequest
			err := decode(`{"limit":25}`, &sync)
			Expect(err).NotTo(HaveOccurred())
			Expect(sync.EffectiveLimit()).To(Equal(25))
		})
	})
})
