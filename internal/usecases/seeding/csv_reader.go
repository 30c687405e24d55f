package seeding

import (
	"encoding/csv"
	"io"
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

const utf8BOM = "\ufeff"

// aliases de cabeçalho normalizados para o nome da coluna no banco
var headerAliases = map[string]string{
	"impactos_periodo_vehículos": "impactos_periodo_vehiculos",
}

// csvTable é um arquivo CSV com o cabeçalho indexado por nome de coluna
type csvTable struct {
	file   string
	header map[string]int
	rows   [][]string
}

func readCSV(fsys fs.FS, file string, required []string) (*csvTable, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", file)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headerRow, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Errorf("%s: arquivo vazio", file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler cabeçalho de %s", file)
	}

	table := &csvTable{file: file, header: make(map[string]int, len(headerRow))}
	for i, name := range headerRow {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		table.header[name] = i
	}

	for _, column := range required {
		if _, ok := table.header[column]; !ok {
			return nil, errors.Errorf("%s: coluna obrigatória ausente: %s", file, column)
		}
	}

	table.rows, err = reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", file)
	}

	return table, nil
}

// record lê uma linha guardando o primeiro erro de conversão,
// para que o mapeamento de colunas não precise checar campo a campo
type record struct {
	table  *csvTable
	line   int
	values []string
	err    error
}

func (t *csvTable) record(i int) *record {
	// linha 1 é o cabeçalho
	return &record{table: t, line: i + 2, values: t.rows[i]}
}

// text devolve a célula como veio no arquivo; só números e datas são aparados
func (r *record) text(column string) string {
	i := r.table.header[column]
	if i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

func (r *record) fail(column, value string, err error) {
	if r.err == nil {
		r.err = errors.Wrapf(err, "%s linha %d coluna %s: valor inválido %q", r.table.file, r.line, column, value)
	}
}

func (r *record) int64(column string) int64 {
	value := r.text(column)
	n, err := utils.ParseLenientInt(value)
	if err != nil {
		r.fail(column, value, err)
	}
	return n
}

func (r *record) float(column string) float64 {
	value := r.text(column)
	f, err := utils.ParseLenientFloat(value)
	if err != nil {
		r.fail(column, value, err)
	}
	return f
}

func (r *record) date(column string) domain.Date {
	value := r.text(column)
	d, err := utils.ParseDate(value)
	if err != nil {
		r.fail(column, value, err)
		return domain.Date{}
	}
	return domain.NewDate(d)
}
