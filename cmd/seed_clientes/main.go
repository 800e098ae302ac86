// seed_clientes genera un script SQL para poblar la tabla de clientes a partir
// del archivo clientes.csv exportado por el sistema anterior de sucursales.
// El export viene en ISO-8859-1 (tildes y eñes del sistema legado).
//
// Uso: go run ./cmd/seed_clientes <codigo-sucursal> [ruta/clientes.csv]
// Por defecto busca clientes.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_clientes.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Columnas del export legado: cedula;nombres;apellidos;apodo;direccion;tel1;tel2;tel3
const columnasEsperadas = 8

type cliente struct {
	cedula    string
	nombres   string
	apellidos string
	apodo     string
	direccion string
	telefonos [3]string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_clientes <codigo-sucursal> [clientes.csv]")
		os.Exit(1)
	}
	branchID := strings.TrimSpace(os.Args[1])
	csvPath := "clientes.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El sistema legado exporta en ISO-8859-1 y separa con punto y coma.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Clientes únicos por cédula; el export legado repite filas por contrato.
	porCedula := make(map[string]cliente)
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "cedula") {
			continue // encabezado
		}
		if len(rec) < columnasEsperadas {
			fmt.Fprintf(os.Stderr, "Fila %d: %d columnas, se esperaban %d; omitida\n", i+1, len(rec), columnasEsperadas)
			continue
		}
		c := cliente{
			cedula:    strings.TrimSpace(rec[0]),
			nombres:   strings.TrimSpace(rec[1]),
			apellidos: strings.TrimSpace(rec[2]),
			apodo:     strings.TrimSpace(rec[3]),
			direccion: strings.TrimSpace(rec[4]),
		}
		for j := 0; j < 3; j++ {
			c.telefonos[j] = strings.TrimSpace(rec[5+j])
		}
		if c.cedula == "" || c.nombres == "" {
			continue
		}
		porCedula[c.cedula] = c
	}

	// Ordenar por cédula para salida estable
	var cedulas []string
	for c := range porCedula {
		cedulas = append(cedulas, c)
	}
	sort.Strings(cedulas)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_clientes.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Clientes importados del sistema anterior (sucursal %s)\n", branchID)
	out.WriteString("-- Generado desde clientes.csv\n\n")

	for _, ced := range cedulas {
		c := porCedula[ced]
		fmt.Fprintf(out, "INSERT INTO customers (id, branch_id, id_card, first_name, last_name, nickname, address, phone1, phone2, phone3)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid()::text, '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s')\n",
			escapeSQL(branchID), escapeSQL(c.cedula), escapeSQL(c.nombres), escapeSQL(c.apellidos),
			escapeSQL(c.apodo), escapeSQL(c.direccion),
			escapeSQL(c.telefonos[0]), escapeSQL(c.telefonos[1]), escapeSQL(c.telefonos[2]))
		out.WriteString("ON CONFLICT (branch_id, id_card) DO UPDATE SET\n")
		out.WriteString("  first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,\n")
		out.WriteString("  nickname = EXCLUDED.nickname, address = EXCLUDED.address,\n")
		out.WriteString("  phone1 = EXCLUDED.phone1, phone2 = EXCLUDED.phone2, phone3 = EXCLUDED.phone3;\n")
	}

	fmt.Printf("Generado %s: %d clientes\n", outPath, len(cedulas))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
