package nubls

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestDelegationEndToEnd(t *testing.T) {
	alice, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	alicePub, err := alice.PublicKey()
	if err != nil {
		t.Fatal(err)
	}
	bob, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	bobPub, err := bob.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	message := testMessage(t)
	sig, err := alice.Sign(message)
	if err != nil {
		t.Fatal(err)
	}
	if err := alicePub.Verify(message, sig); err != nil {
		t.Fatalf("original signature rejected: %v", err)
	}

	// Bob derives the designated key pair relative to Alice's key.
	designated, err := bob.DesignatedKey(alicePub)
	if err != nil {
		t.Fatal(err)
	}
	designatedPub, err := designated.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	// Alice authorizes the proxy.
	rk, err := alice.ResigningKey(bobPub)
	if err != nil {
		t.Fatal(err)
	}

	// The proxy transforms the signature.
	resigned, err := rk.Resign(alicePub, message, sig)
	if err != nil {
		t.Fatalf("resign failed: %v", err)
	}

	if err := designatedPub.Verify(message, resigned); err != nil {
		t.Errorf("re-signed signature rejected by designated key: %v", err)
	}
	if err := alicePub.Verify(message, resigned); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("re-signed signature still verifies under the source key: %v", err)
	}

	t.Run("KeysAreDistinct", func(t *testing.T) {
		if bytes.Equal(rk.Bytes(), alice.Bytes()) {
			t.Error("re-signing key equals the source key")
		}
		if bytes.Equal(rk.Bytes(), bob.Bytes()) {
			t.Error("re-signing key equals the delegatee's key")
		}
		if bytes.Equal(designated.Bytes(), alice.Bytes()) {
			t.Error("designated key equals the source key")
		}
		if bytes.Equal(designated.Bytes(), bob.Bytes()) {
			t.Error("designated key equals the delegatee's key")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		rk2, err := alice.ResigningKey(bobPub)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(rk.Bytes(), rk2.Bytes()) {
			t.Error("re-signing key derivation is not deterministic")
		}
		d2, err := bob.DesignatedKey(alicePub)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(designated.Bytes(), d2.Bytes()) {
			t.Error("designated key derivation is not deterministic")
		}
	})

	t.Run("SymmetricDerivation", func(t *testing.T) {
		// Both sides hash the same shared point, so Alice computes
		// the same designated scalar from Bob's public key.
		mirror, err := alice.DesignatedKey(bobPub)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(mirror.Bytes(), designated.Bytes()) {
			t.Error("designated key derivation is not symmetric in the key pair")
		}
	})
}

func TestResignRejectsForgedInput(t *testing.T) {
	alice, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	alicePub, err := alice.PublicKey()
	if err != nil {
		t.Fatal(err)
	}
	bob, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	bobPub, err := bob.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	rk, err := alice.ResigningKey(bobPub)
	if err != nil {
		t.Fatal(err)
	}
	message := testMessage(t)

	t.Run("SignatureByOtherKey", func(t *testing.T) {
		forged, err := bob.Sign(message)
		if err != nil {
			t.Fatal(err)
		}
		_, err = rk.Resign(alicePub, message, forged)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("got %v, want ErrInvalidSignature", err)
		}
	})

	t.Run("SignatureOverOtherMessage", func(t *testing.T) {
		sig, err := alice.Sign(testMessage(t))
		if err != nil {
			t.Fatal(err)
		}
		_, err = rk.Resign(alicePub, message, sig)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("got %v, want ErrInvalidSignature", err)
		}
	})
}

func TestPRSFragmentMisuse(t *testing.T) {
	key, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	pub, err := key.PublicKey()
	if err != nil {
		t.Fatal(err)
	}
	fragments, err := key.Split(rand.Reader, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	fragment := fragments[0]

	if _, err := fragment.ResigningKey(pub); !errors.Is(err, ErrNotASigningKey) {
		t.Errorf("ResigningKey: got %v, want ErrNotASigningKey", err)
	}
	if _, err := fragment.DesignatedKey(pub); !errors.Is(err, ErrNotASigningKey) {
		t.Errorf("DesignatedKey: got %v, want ErrNotASigningKey", err)
	}

	message := testMessage(t)
	sig, err := key.Sign(message)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fragment.Resign(pub, message, sig); !errors.Is(err, ErrNotASigningKey) {
		t.Errorf("Resign: got %v, want ErrNotASigningKey", err)
	}
}
