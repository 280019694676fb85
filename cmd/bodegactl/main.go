// bodegactl opera sobre el fichero de snapshot de la bodega sin levantar el
// servidor: exportar, importar (reemplazo destructivo confirmado) y resumen.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/infrastructure/storage"
	"github.com/tu-usuario/bodega-api/pkg/config"
	"github.com/tu-usuario/bodega-api/pkg/logger"
)

var dataPath string

func main() {
	defaultPath := "bodega.json"
	if cfg, err := config.Load(); err == nil {
		defaultPath = cfg.Storage.Path
	}

	root := &cobra.Command{
		Use:           "bodegactl",
		Short:         "Herramienta de línea de comandos del Gestor de Vinos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", defaultPath, "ruta del fichero de snapshot")

	root.AddCommand(exportCmd(), importCmd(), summaryCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func openStore() *storage.FileStore {
	return storage.NewFileStore(dataPath, logger.Nop())
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta el blob completo de la bodega",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore()
			data, err := store.Load()
			if err != nil {
				return err
			}
			blob, err := store.Export(data)
			if err != nil {
				return err
			}
			if out == "" {
				out = inventory.ExportFileName(time.Now())
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(append(blob, '\n'))
				return err
			}
			if err := os.WriteFile(out, blob, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "exportado a", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "fichero de salida ('-' = stdout; vacío = bodega_<fecha>.json)")
	return cmd
}

func importCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <fichero>",
		Short: "Reemplaza la bodega completa por el contenido del fichero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			store := openStore()
			// Validar antes de preguntar: un blob malformado no debe
			// llegar a la confirmación destructiva.
			data, err := store.Import(blob)
			if err != nil {
				return err
			}
			if !yes && !confirm(cmd, "¿Reemplazar la base de datos actual? Se perderán los datos no guardados") {
				fmt.Fprintln(cmd.OutOrStdout(), "importación cancelada")
				return nil
			}
			if err := store.Save(data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "bodega reemplazada desde", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no preguntar confirmación")
	return cmd
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resumen",
		Short: "Muestra las existencias por familia y el tamaño del libro",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := openStore().Load()
			if err != nil {
				return err
			}
			var kg, lts, bottles, units float64
			for _, g := range data.Grapes {
				kg += g.Weight
			}
			for _, b := range data.Bulk {
				lts += b.Volume
			}
			for _, f := range data.Finished {
				bottles += f.Quantity
			}
			for _, m := range data.Materials {
				units += m.Quantity
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Uva:      %4d lotes       %10.2f Kg\n", len(data.Grapes), kg)
			fmt.Fprintf(w, "Granel:   %4d tanques     %10.2f Lts\n", len(data.Bulk), lts)
			fmt.Fprintf(w, "Botellas: %4d referencias %10.0f uds\n", len(data.Finished), bottles)
			fmt.Fprintf(w, "Insumos:  %4d materiales  %10.0f uds\n", len(data.Materials), units)
			fmt.Fprintf(w, "Libro:    %4d asientos\n", len(data.Movements))
			return nil
		},
	}
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "si"
}
