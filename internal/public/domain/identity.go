package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// keySanitizer troca os caracteres proibidos em segmentos de chave do
// armazenamento de documentos (. # $ [ ]) por underscore.
var keySanitizer = strings.NewReplacer(".", "_", "#", "_", "$", "_", "[", "_", "]", "_")

var whitespacePattern = regexp.MustCompile(`\s+`)

// SafeKey sanitiza um e-mail para uso como segmento de chave. A função é
// idempotente: SafeKey(SafeKey(s)) == SafeKey(s). A mesma entrada tem de
// produzir sempre a mesma saída, pois a chave é usada tanto na gravação
// quanto na releitura — divergência torna o documento inalcançável.
func SafeKey(email string) string {
	return keySanitizer.Replace(strings.TrimSpace(email))
}

// ResolveOwnerKey deriva o identificador estável de dono a partir do que a
// conta tiver disponível: o ID já resolvido, o e-mail sanitizado, um slug do
// nome completo e, em último caso, um placeholder temporal (único caminho
// não determinístico, alcançável apenas com a conta inteiramente vazia).
func ResolveOwnerKey(user User) string {
	if strings.TrimSpace(user.ID) != "" {
		return user.ID
	}
	if strings.TrimSpace(user.Email) != "" {
		return SafeKey(user.Email)
	}
	if name := strings.TrimSpace(user.FullName); name != "" {
		return whitespacePattern.ReplaceAllString(strings.ToLower(keySanitizer.Replace(name)), "_")
	}
	return fmt.Sprintf("user_%d", time.Now().UnixMilli())
}
