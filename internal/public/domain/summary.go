package domain

// ReviewSummary é o resumo derivado da sequência de avaliações de um
// estabelecimento: contagem, média aritmética e distribuição por estrela.
type ReviewSummary struct {
	Count   int
	Average float64
	PerStar map[int]int
}

// WritePayload carrega exatamente os campos que precisam ser gravados para
// manter os caches (reviewsCount, rating) consistentes com a sequência —
// nunca o documento inteiro.
type WritePayload struct {
	Reviews      []Review
	ReviewsCount int
	Rating       float64
}

// Summarize recomputa o resumo a partir da sequência completa. Sequência
// vazia resulta em média 0 (nunca divide por zero). Notas fora de 1..5 não
// entram no histograma mas contam na soma, como no cliente legado.
func Summarize(reviews []Review) ReviewSummary {
	perStar := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	if len(reviews) == 0 {
		return ReviewSummary{Count: 0, Average: 0, PerStar: perStar}
	}

	sum := 0
	for _, review := range reviews {
		if review.Rating >= 1 && review.Rating <= 5 {
			perStar[review.Rating]++
		}
		sum += review.Rating
	}

	return ReviewSummary{
		Count:   len(reviews),
		Average: float64(sum) / float64(len(reviews)),
		PerStar: perStar,
	}
}

// InsertReview insere a avaliação no início da sequência (ordem canônica é
// mais-recente-primeiro) e recomputa os caches a partir da sequência nova
// completa, evitando deriva acumulada de ponto flutuante.
func InsertReview(reviews []Review, review Review) WritePayload {
	updated := make([]Review, 0, len(reviews)+1)
	updated = append(updated, review)
	updated = append(updated, reviews...)

	summary := Summarize(updated)
	return WritePayload{
		Reviews:      updated,
		ReviewsCount: summary.Count,
		Rating:       summary.Average,
	}
}

// DeleteReview remove a avaliação alvo preservando a ordem relativa dos
// demais elementos. A resolução de identidade segue três etapas:
//
//  1. ID gerado, quando o alvo possui um;
//  2. casamento por conteúdo (nome, data, comentário, nota) — pode remover
//     mais de um elemento se houver avaliações idênticas campo a campo;
//  3. índice posicional, apenas se nada foi removido e o índice é válido.
//
// Retorna false quando a sequência não mudou; nesse caso o chamador não deve
// gravar nada.
func DeleteReview(reviews []Review, target Review, fallbackIndex int) (WritePayload, bool) {
	updated := removeByID(reviews, target.ID)
	if len(updated) == len(reviews) {
		updated = removeByContent(reviews, target)
	}
	if len(updated) == len(reviews) && fallbackIndex >= 0 && fallbackIndex < len(reviews) {
		updated = append(append(make([]Review, 0, len(reviews)-1), reviews[:fallbackIndex]...), reviews[fallbackIndex+1:]...)
	}
	if len(updated) == len(reviews) {
		return WritePayload{}, false
	}

	summary := Summarize(updated)
	return WritePayload{
		Reviews:      updated,
		ReviewsCount: summary.Count,
		Rating:       summary.Average,
	}, true
}

// DeleteReviewAt remove exatamente o elemento na posição dada, sem casamento
// por conteúdo. É o caminho do índice posicional legado: duplicatas campo a
// campo em outras posições permanecem intactas. Índice fora da sequência
// retorna false.
func DeleteReviewAt(reviews []Review, index int) (WritePayload, bool) {
	if index < 0 || index >= len(reviews) {
		return WritePayload{}, false
	}

	updated := append(append(make([]Review, 0, len(reviews)-1), reviews[:index]...), reviews[index+1:]...)
	summary := Summarize(updated)
	return WritePayload{
		Reviews:      updated,
		ReviewsCount: summary.Count,
		Rating:       summary.Average,
	}, true
}

func removeByID(reviews []Review, id string) []Review {
	if id == "" {
		return reviews
	}
	kept := make([]Review, 0, len(reviews))
	for _, review := range reviews {
		if review.ID == id {
			continue
		}
		kept = append(kept, review)
	}
	return kept
}

func removeByContent(reviews []Review, target Review) []Review {
	kept := make([]Review, 0, len(reviews))
	for _, review := range reviews {
		if review.Name == target.Name &&
			review.Date == target.Date &&
			review.Comment == target.Comment &&
			review.Rating == target.Rating {
			continue
		}
		kept = append(kept, review)
	}
	return kept
}
