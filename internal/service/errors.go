package service

// ValidationError несёт ключ перевода для пользовательского сообщения.
// Конкретный текст подставляет слой рендеринга через каталог i18n.
type ValidationError struct {
	Key string
}

func (e *ValidationError) Error() string {
	return e.Key
}

var (
	// регистрация
	ErrUsernameChars    = &ValidationError{Key: "err_username_chars"}
	ErrUsernameLength   = &ValidationError{Key: "err_username_length"}
	ErrPasswordShort    = &ValidationError{Key: "err_pw_too_short"}
	ErrPasswordMismatch = &ValidationError{Key: "err_pw_mismatch"}
	ErrUsernameTaken    = &ValidationError{Key: "err_user_taken"}

	// вход
	ErrLoginFailed = &ValidationError{Key: "err_login_failed"}

	// посты и загрузка файлов
	ErrFillFields  = &ValidationError{Key: "err_fill_fields"}
	ErrImageTooBig = &ValidationError{Key: "err_img_too_big"}
	ErrImageType   = &ValidationError{Key: "err_img_type"}
	ErrImageSave   = &ValidationError{Key: "err_img_save"}
	ErrServerLimit = &ValidationError{Key: "err_server_limit"}

	// инфраструктура
	ErrDatabase = &ValidationError{Key: "err_db"}
)
