package iostreams

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	log "github.com/sirupsen/logrus"

	"github.com/trewor92/07-IOStreams/testutil"
)

func TestCalculateHash(t *testing.T) {
	tests := []struct {
		algorithm string
		input     string
		want      string
	}{
		{"MD5", "", "D41D8CD98F00B204E9800998ECF8427E"},
		{"MD5", "abc", "900150983CD24FB0D6963F7D28E17F72"},
		{"md5", "abc", "900150983CD24FB0D6963F7D28E17F72"},
		{"SHA", "abc", "A9993E364706816ABA3E25717850C26C9CD0D89D"},
		{"SHA1", "abc", "A9993E364706816ABA3E25717850C26C9CD0D89D"},
		{"SHA-1", "abc", "A9993E364706816ABA3E25717850C26C9CD0D89D"},
		{"SHA256", "abc", "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"},
		{"sha-256", "abc", "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"},
		{"SHA384", "abc", "CB00753F45A35E8BB5A03D699AC65007272C32AB0EDED1631A8B605A43FF5BED8086072BA1E7CC2358BAECA134C825A7"},
		{"SHA512", "abc", "DDAF35A193617ABACC417349AE20413112E6FA4E89A97EA20A9EEEE64B55D39A2192992A274FC1A836BA3C23A3FEEBBD454D4423643CE80E2A9AC94FA54CA49F"},
		{"SHA3-256", "abc", "3A985DA74FE225B2045C172D6BD390BD855F086E3E9D525B46BFE24511431532"},
		{"SHA3-512", "abc", "B751850B1A57168A5693CD924B6B096E08F621827444F70D884F5D0240D2712E10E116E9192AF3C91A7EC57647E3934057340B4CF408D5A56592F8274EEC53F0"},
		{"BLAKE2B-256", "abc", "BDDD813C634239723171EF3FEE98579B94964E3BB1CB3E427262C8C068D52319"},
		{"BLAKE2B-512", "abc", "BA80A53F981C4D0D6A2797B69F12F6E94C212F14685AC4B74B12BB6FDBFFA2D17D87C5392AAB792DC252D5DE4533CC9518D38AA8DBF1925AB92386EDD4009923"},
		{"BLAKE3", "abc", "6437B3AC38465133FFB63B75273A8DB548C558465D79DB03FD359C6CD5BD9D85"},
		{"RIPEMD160", "abc", "8EB208F7E05D987A9B044A8E98C6B087F15A0BFC"},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm+"/"+tt.input, func(t *testing.T) {
			got, err := CalculateHash(strings.NewReader(tt.input), tt.algorithm)
			if err != nil {
				t.Fatalf("CalculateHash() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateHashFile(t *testing.T) {
	const want = "15FB26E7932AA2A7F100EFD8DD17D9893F9A40CD"

	for i := 0; i < 2; i++ {
		f, err := os.Open(filepath.Join("testdata", "lorem.txt"))
		if err != nil {
			t.Fatal(err)
		}

		got, err := CalculateHash(f, "SHA1")
		f.Close()
		if err != nil {
			t.Fatalf("CalculateHash() error = %v", err)
		}
		if got != want {
			t.Errorf("call #%d: got %s, want %s", i+1, got, want)
		}
	}
}

func TestCalculateHashDrainsStream(t *testing.T) {
	r := strings.NewReader("abc")
	if _, err := CalculateHash(r, "MD5"); err != nil {
		t.Fatalf("CalculateHash() error = %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("%d bytes left unread, want 0", r.Len())
	}
}

func TestCalculateHashErrors(t *testing.T) {
	t.Run("unknown algorithm", func(t *testing.T) {
		r := strings.NewReader("abc")
		got, err := CalculateHash(r, "CRC32")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("got error = %v, want it to match ErrInvalidArgument", err)
		}
		if got != "" {
			t.Errorf("got %q along with an error, want empty string", got)
		}
		if r.Len() != 3 {
			t.Errorf("stream has been read, %d bytes left, want 3", r.Len())
		}
	})

	t.Run("read error", func(t *testing.T) {
		r := io.MultiReader(bytes.NewReader([]byte("abc")), iotest.ErrReader(io.ErrClosedPipe))
		got, err := CalculateHash(r, "MD5")
		if !errors.Is(err, io.ErrClosedPipe) {
			t.Fatalf("got error = %v, want it to match io.ErrClosedPipe", err)
		}
		if got != "" {
			t.Errorf("got %q along with an error, want empty string", got)
		}
	})
}

func TestHashAlgorithms(t *testing.T) {
	names := HashAlgorithms()
	for _, name := range []string{"MD5", "SHA1", "SHA256"} {
		found := false
		for _, n := range names {
			if n == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("HashAlgorithms() = %v, want it to contain %s", names, name)
		}
	}

	for _, name := range names {
		if _, err := CalculateHash(strings.NewReader(""), name); err != nil {
			t.Errorf("CalculateHash(%q) error = %v", name, err)
		}
	}
}

func TestCalculateHashLogs(t *testing.T) {
	hook := testutil.LogHook(t)

	if _, err := CalculateHash(strings.NewReader("abc"), "sha256"); err != nil {
		t.Fatalf("CalculateHash() error = %v", err)
	}

	entry := testutil.FindEntry(t, hook, "CalculateHash")
	if entry.Level != log.DebugLevel {
		t.Errorf("got level %v, want %v", entry.Level, log.DebugLevel)
	}
	if entry.Data["algorithm"] != "sha256" {
		t.Errorf("got algorithm = %v, want %v", entry.Data["algorithm"], "sha256")
	}
	if entry.Message != "hashed 3 B" {
		t.Errorf("got message %q, want %q", entry.Message, "hashed 3 B")
	}
}
