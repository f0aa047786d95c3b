// Package cryptogram encrypts and decrypts integers with textbook RSA.
//
// EncryptRaw and DecryptRaw take the exponent and modulus directly and
// accept any non-negative value; the result is always reduced mod n.
// Encrypt and Decrypt take typed keys and reject values outside [0, n)
// with ErrMessageOutOfRange, which is the range where decryption recovers
// the plaintext.
//
// There is no padding. Equal plaintexts give equal ciphertexts and the
// scheme is malleable. Do not use it to protect real data.
package cryptogram
