// compileinfoprint is imported for the side effect of logging which build is
// running before anything else happens.
package compileinfoprint

import (
	"log"

	"github.com/carbocation/interactomestats/compileinfo"
)

func init() {
	log.Println("Running", compileinfo.Get())
}
