package auth

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("Hash must not be the plaintext")
	}

	if !Verify("correct horse battery staple", hash) {
		t.Error("Correct password should verify")
	}
	if Verify("wrong password", hash) {
		t.Error("Wrong password must not verify")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	first, err := Hash("secret")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := Hash("secret")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if first == second {
		t.Error("Two hashes of the same password should differ")
	}
	if !Verify("secret", first) || !Verify("secret", second) {
		t.Error("Both hashes should verify the original password")
	}
}
