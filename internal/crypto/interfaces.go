package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService отвечает за шифрование значений локального хранилища сессии.
// Он не знает ничего о сети, базе данных или пользователях.
//
// Схема работы:
//
//	Salt = GenerateSalt()                 (один раз, хранится открыто)
//	Key  = DeriveKey(secret, salt)        (при каждом открытии хранилища)
//	Blob = Seal(value, Key)               (nonce ‖ ciphertext)
//	Value = Open(Blob, Key)
type KeyChainService interface {
	// GenerateSalt генерирует случайную соль (16 байт / 128 бит).
	// Соль не является секретом и хранится рядом с данными.
	GenerateSalt() ([]byte, error)

	// DeriveKey выводит 256-битный ключ из секрета и соли через Argon2id.
	// Ключ существует только в памяти процесса.
	DeriveKey(secret string, salt []byte) []byte

	// Seal encrypts plaintext with key using AES-256-GCM.
	// The result is nonce || ciphertext.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open reverses Seal. It fails with ErrDecryption when the key is wrong
	// or the blob was tampered with.
	Open(blob, key []byte) ([]byte, error)
}
