// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-collections-keeper/models"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	InitHasherPool(testHashKey)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

// TestHashHex_WithDocumentBody хешируем тело запроса так же, как это делает адаптер
func TestHashHex_WithDocumentBody(t *testing.T) {
	InitHasherPool(testHashKey)

	doc, err := models.NewDocument(models.Record{
		ClientID:    "c-1",
		WorkerName:  "ravi",
		CounterName: "Shop 1",
		Amount:      decimal.NewFromInt(100),
		Mode:        models.ModeCash,
		Date:        "2026-10-19",
	})
	if err != nil {
		t.Fatalf("failed to build document: %v", err)
	}
	body, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}

	got := HashHex(body)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("Hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
	if !EqualHash(body, got) {
		t.Error("EqualHash must accept its own digest")
	}
}

func TestEqualHash_Rejects(t *testing.T) {
	InitHasherPool(testHashKey)
	body := []byte(`{"ids":["a"]}`)

	if EqualHash(body, "not-hex") {
		t.Error("malformed hex must be rejected")
	}
	if EqualHash(body, HashHex([]byte(`{"ids":["b"]}`))) {
		t.Error("digest of another body must be rejected")
	}
}

// TestHash_DifferentKeys проверяет что разные ключи дают разные хеши
func TestHash_DifferentKeys(t *testing.T) {
	body := []byte(`{"amount":"100"}`)

	InitHasherPool("key-one")
	hash1 := HashHex(body)

	InitHasherPool("key-two")
	hash2 := HashHex(body)

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same body")
	}
}

func TestHashString_MatchesPool(t *testing.T) {
	InitHasherPool(testHashKey)

	if HashString("payload", testHashKey) != HashHex([]byte("payload")) {
		t.Error("HashString and HashHex must agree for the same key")
	}
}
