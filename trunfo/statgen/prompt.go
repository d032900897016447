package statgen

import (
	"fmt"
	"strings"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
)

// AbilityField is the schema key of the flavor text.
const AbilityField = "specialAbility"

// BuildPrompt embeds the profile and the fixed slot semantics.
func BuildPrompt(p cards.Profile) Prompt {
	var b strings.Builder
	b.WriteString("IMPORTANTE: Responda SEMPRE em português brasileiro (pt-BR).\n\n")
	b.WriteString("Analise o seguinte perfil para um jogo de cartas chamado \"Amigo Trunfo\".\n\n")
	fmt.Fprintf(&b, "Perfil:\n- Nome: %s\n- Idade: %d\n- Profissão/Hobby: %s\n- Estado Civil: %s\n\n",
		p.Name, p.Age, p.Profession, p.MaritalStatus)

	fmt.Fprintf(&b, "Gere valores numéricos (%d-%d) para EXATAMENTE estes %d atributos fixos:\n\n",
		cards.MinValue, cards.MaxValue, cards.AttributeCount)
	for _, a := range cards.Attributes() {
		fmt.Fprintf(&b, "%d. %s (%s): %s\n", int(a)+1, strings.ToUpper(a.Label()), a.Key(), a.Guidance())
	}

	b.WriteString(`
Diretrizes para valores:
- Considere a idade: crianças têm muita energia mas pouco skill profissional
- Considere a profissão: programador tem alto skill mas talvez baixo social
- Considere o estado civil: casados podem ter menos audácia, mais social
- Seja criativo e divertido, mas realista nos valores
- Valores entre 30-90 são comuns, 1-30 ou 90-100 são extremos

Gere também uma HABILIDADE ESPECIAL engraçada e criativa (máximo 6 palavras, em português).
Exemplo: "Dorme de olho aberto", "Café no sangue".
`)

	return Prompt{
		Profile:      p,
		Instructions: b.String(),
		Fields:       Fields(),
	}
}

// Fields is the response schema: five integers then the ability text.
func Fields() []Field {
	fields := make([]Field, 0, cards.AttributeCount+1)
	for _, a := range cards.Attributes() {
		fields = append(fields, Field{
			Key:         a.Key(),
			Type:        "integer",
			Description: fmt.Sprintf("%s (%d-%d)", a.Label(), cards.MinValue, cards.MaxValue),
		})
	}
	fields = append(fields, Field{
		Key:         AbilityField,
		Type:        "string",
		Description: "Habilidade especial engraçada",
	})
	return fields
}
